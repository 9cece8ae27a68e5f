package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/waitlist-simple/apperrors"
	"github.com/waitlist-simple/database"
	"github.com/waitlist-simple/models"
)

const entryNotFound = "Waitlist entry not found"

// DailyCount is one day's signup total as read from the database.
type DailyCount struct {
	Date  string
	Count int64
}

// WaitlistRepository handles database operations for waitlist entries
type WaitlistRepository struct {
	db *gorm.DB
}

// NewWaitlistRepository creates a new waitlist repository instance
func NewWaitlistRepository() *WaitlistRepository {
	return &WaitlistRepository{}
}

func (r *WaitlistRepository) conn(ctx context.Context) (*gorm.DB, context.CancelFunc, error) {
	ctx, cancel := withQueryDeadline(ctx)
	if r.db != nil {
		return r.db.WithContext(ctx), cancel, nil
	}
	conn, err := database.Conn(ctx)
	if err != nil {
		cancel()
		return nil, nil, apperrors.NewUnavailable(err)
	}
	return conn, cancel, nil
}

// Create inserts a new waitlist entry. A duplicate (email, project) pair is
// rejected by the composite unique index and surfaces as a conflict.
func (r *WaitlistRepository) Create(ctx context.Context, entry models.WaitlistEntry) (models.WaitlistEntry, error) {
	db, cancel, err := r.conn(ctx)
	if err != nil {
		return models.WaitlistEntry{}, err
	}
	defer cancel()
	if err := db.Create(&entry).Error; err != nil {
		return models.WaitlistEntry{}, translate(err, entryNotFound)
	}
	return entry, nil
}

// CountByProjectID counts all entries owned by a project.
func (r *WaitlistRepository) CountByProjectID(ctx context.Context, projectID string) (int64, error) {
	db, cancel, err := r.conn(ctx)
	if err != nil {
		return 0, err
	}
	defer cancel()
	var count int64
	if err := db.Model(&models.WaitlistEntry{}).Where("project_id = ?", projectID).Count(&count).Error; err != nil {
		return 0, translate(err, entryNotFound)
	}
	return count, nil
}

// CountByProjectIDSince counts entries created at or after the given time.
func (r *WaitlistRepository) CountByProjectIDSince(ctx context.Context, projectID string, since time.Time) (int64, error) {
	db, cancel, err := r.conn(ctx)
	if err != nil {
		return 0, err
	}
	defer cancel()
	var count int64
	result := db.Model(&models.WaitlistEntry{}).
		Where("project_id = ? AND created_at >= ?", projectID, since).
		Count(&count)
	if result.Error != nil {
		return 0, translate(result.Error, entryNotFound)
	}
	return count, nil
}

// FindWithPagination retrieves one page of a project's entries with optional
// case-insensitive search over name and email. sortColumn and sortOrder must
// already be whitelisted by the caller. The returned total reflects the
// filtered set, not the whole tenant.
func (r *WaitlistRepository) FindWithPagination(
	ctx context.Context,
	projectID string,
	page, limit int,
	search, sortColumn, sortOrder string) ([]models.WaitlistEntry, int64, error) {

	db, cancel, err := r.conn(ctx)
	if err != nil {
		return nil, 0, err
	}
	defer cancel()

	query := db.Model(&models.WaitlistEntry{}).Where("project_id = ?", projectID)

	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("(name ILIKE ? OR email ILIKE ?)", pattern, pattern)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, translate(err, entryNotFound)
	}

	offset := (page - 1) * limit
	var entries []models.WaitlistEntry
	result := query.Order(sortColumn + " " + sortOrder).Limit(limit).Offset(offset).Find(&entries)
	if result.Error != nil {
		return nil, 0, translate(result.Error, entryNotFound)
	}

	return entries, totalCount, nil
}

// DailyCounts groups a project's signups since the given time into UTC
// calendar-day buckets, ascending by date. Days without signups are absent.
func (r *WaitlistRepository) DailyCounts(ctx context.Context, projectID string, since time.Time) ([]DailyCount, error) {
	db, cancel, err := r.conn(ctx)
	if err != nil {
		return nil, err
	}
	defer cancel()
	var counts []DailyCount
	result := db.Model(&models.WaitlistEntry{}).
		Select("to_char(created_at AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS date, count(*) AS count").
		Where("project_id = ? AND created_at >= ?", projectID, since).
		Group("date").
		Order("date ASC").
		Scan(&counts)
	if result.Error != nil {
		return nil, translate(result.Error, entryNotFound)
	}
	return counts, nil
}

// DeleteScoped removes one entry, but only within the given project. An
// entry ID belonging to another tenant does not resolve here.
func (r *WaitlistRepository) DeleteScoped(ctx context.Context, projectID, entryID string) error {
	db, cancel, err := r.conn(ctx)
	if err != nil {
		return err
	}
	defer cancel()
	result := db.Where("id = ? AND project_id = ?", entryID, projectID).Delete(&models.WaitlistEntry{})
	if result.Error != nil {
		return translate(result.Error, entryNotFound)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFound(entryNotFound)
	}
	return nil
}
