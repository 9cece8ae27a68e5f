package services

import (
	"context"
	"strings"
	"time"

	"github.com/waitlist-simple/dto"
	"github.com/waitlist-simple/models"
	"github.com/waitlist-simple/repositories"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// sortColumns whitelists the API sort keys and maps them to columns.
var sortColumns = map[string]string{
	"createdAt": "created_at",
	"name":      "name",
	"email":     "email",
}

// WaitlistService handles business logic for waitlist entries
type WaitlistService struct {
	waitlistRepo *repositories.WaitlistRepository
	projectRepo  *repositories.ProjectRepository
}

// NewWaitlistService creates a new waitlist service instance
func NewWaitlistService() *WaitlistService {
	return &WaitlistService{
		waitlistRepo: repositories.NewWaitlistRepository(),
		projectRepo:  repositories.NewProjectRepository(),
	}
}

// AddEntry appends a signup to the authenticated project's waitlist. The
// owning project comes from the verified token, never the request body.
func (s *WaitlistService) AddEntry(ctx context.Context, project models.Project, req dto.AddWaitlistRequest) (dto.WaitlistEntryResponse, error) {
	entry := models.WaitlistEntry{
		Email:     NormalizeEmail(req.Email),
		Name:      strings.TrimSpace(req.Name),
		Extra:     strings.TrimSpace(req.Extra),
		ProjectID: project.ID,
	}

	created, err := s.waitlistRepo.Create(ctx, entry)
	if err != nil {
		return dto.WaitlistEntryResponse{}, err
	}

	return dto.NewWaitlistEntryResponse(created, project), nil
}

// ListEntries retrieves one page of a project's waitlist with search,
// sorting and pagination. Unknown projects yield a not-found error.
func (s *WaitlistService) ListEntries(ctx context.Context, filter dto.WaitlistFilter) ([]models.WaitlistEntry, dto.PaginationMeta, error) {
	if _, err := s.projectRepo.FindByID(ctx, filter.ProjectID); err != nil {
		return nil, dto.PaginationMeta{}, err
	}

	filter = normalizeFilter(filter)
	sortColumn := sortColumns[filter.SortBy]

	entries, totalCount, err := s.waitlistRepo.FindWithPagination(
		ctx,
		filter.ProjectID,
		filter.Page,
		filter.Limit,
		filter.Search,
		sortColumn,
		filter.SortOrder,
	)
	if err != nil {
		return nil, dto.PaginationMeta{}, err
	}

	return entries, buildPaginationMeta(filter.Page, filter.Limit, totalCount), nil
}

// GetStats returns aggregate signup statistics for a project: the all-time
// total, the trailing-30-day count, and per-day buckets for the trailing
// 7 days (UTC calendar days, zero days omitted).
func (s *WaitlistService) GetStats(ctx context.Context, projectID string) (dto.WaitlistStatsResponse, error) {
	if _, err := s.projectRepo.FindByID(ctx, projectID); err != nil {
		return dto.WaitlistStatsResponse{}, err
	}

	now := time.Now().UTC()

	totalEntries, err := s.waitlistRepo.CountByProjectID(ctx, projectID)
	if err != nil {
		return dto.WaitlistStatsResponse{}, err
	}

	recentEntries, err := s.waitlistRepo.CountByProjectIDSince(ctx, projectID, now.AddDate(0, 0, -30))
	if err != nil {
		return dto.WaitlistStatsResponse{}, err
	}

	counts, err := s.waitlistRepo.DailyCounts(ctx, projectID, now.AddDate(0, 0, -7))
	if err != nil {
		return dto.WaitlistStatsResponse{}, err
	}

	dailyStats := make([]dto.DailyStat, 0, len(counts))
	for _, c := range counts {
		dailyStats = append(dailyStats, dto.DailyStat{Date: c.Date, Count: c.Count})
	}

	return dto.WaitlistStatsResponse{
		TotalEntries:  totalEntries,
		RecentEntries: recentEntries,
		DailyStats:    dailyStats,
	}, nil
}

// DeleteEntry removes one entry under the given project. Entry IDs owned by
// another project do not resolve; that is the tenancy-isolation boundary.
func (s *WaitlistService) DeleteEntry(ctx context.Context, projectID, entryID string) error {
	if _, err := s.projectRepo.FindByID(ctx, projectID); err != nil {
		return err
	}
	return s.waitlistRepo.DeleteScoped(ctx, projectID, entryID)
}

// NormalizeEmail lowercases and trims an address so the per-project
// uniqueness constraint compares canonical forms.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// normalizeFilter applies defaults and bounds to list criteria.
func normalizeFilter(filter dto.WaitlistFilter) dto.WaitlistFilter {
	if filter.Page < 1 {
		filter.Page = defaultPage
	}
	if filter.Limit < 1 {
		filter.Limit = defaultLimit
	}
	if filter.Limit > maxLimit {
		filter.Limit = maxLimit
	}
	if _, ok := sortColumns[filter.SortBy]; !ok {
		filter.SortBy = "createdAt"
	}
	if filter.SortOrder != "asc" && filter.SortOrder != "desc" {
		filter.SortOrder = "desc"
	}
	filter.Search = strings.TrimSpace(filter.Search)
	return filter
}

// buildPaginationMeta computes page metadata from the filtered total.
func buildPaginationMeta(page, limit int, totalCount int64) dto.PaginationMeta {
	totalPages := int(totalCount) / limit
	if int(totalCount)%limit > 0 {
		totalPages++
	}

	return dto.PaginationMeta{
		CurrentPage:     page,
		TotalPages:      totalPages,
		TotalCount:      totalCount,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1,
	}
}
