package db

import "gorm.io/gorm"

type Repositories struct {
	Profiles       *ProfileRepository
	PeriodEntries  *PeriodEntryRepository
	DailyEntries   *DailyEntryRepository
	SymptomRecords *SymptomRecordRepository
	CycleInfos     *CycleInfoRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Profiles:       NewProfileRepository(database),
		PeriodEntries:  NewPeriodEntryRepository(database),
		DailyEntries:   NewDailyEntryRepository(database),
		SymptomRecords: NewSymptomRecordRepository(database),
		CycleInfos:     NewCycleInfoRepository(database),
	}
}
