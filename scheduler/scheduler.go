package scheduler

import (
	"time"

	"realty-admin-server/models"
	"realty-admin-server/utils"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// Scheduler runs the periodic stock maintenance jobs.
type Scheduler struct {
	cron *cron.Cron
	db   *gorm.DB
}

func New(db *gorm.DB) *Scheduler {
	return &Scheduler{
		cron: cron.New(),
		db:   db,
	}
}

// Start registers the hourly hold-expiry sweep and starts the cron loop.
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc("@hourly", func() {
		if err := s.ReleaseExpiredHolds(); err != nil {
			utils.GetLogger().Error("hold-expiry sweep failed: ", err)
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	utils.GetLogger().Info("scheduler started with hourly hold-expiry sweep")
	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// ReleaseExpiredHolds flips Hold stock entries whose till-date has passed
// back to Free, so expired reservations do not keep properties off the
// market.
func (s *Scheduler) ReleaseExpiredHolds() error {
	var expired []models.Stock
	if err := s.db.Where("status = ? AND till_date IS NOT NULL AND till_date < ?", models.StockStatusHold, time.Now()).Find(&expired).Error; err != nil {
		return err
	}

	for _, entry := range expired {
		updates := map[string]interface{}{
			"status":    models.StockStatusFree,
			"till_date": nil,
		}
		if err := s.db.Model(&models.Stock{}).Where("id = ?", entry.ID).Updates(updates).Error; err != nil {
			return err
		}
		utils.GetLogger().WithField("stock_id", entry.ID).Info("released expired hold")
	}

	return nil
}
