package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waitlist-simple/apperrors"
)

func projectRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "slug", "description", "api_token", "is_active", "created_at", "updated_at",
	})
}

func TestProjectRepository_FindByToken_ActiveMatch(t *testing.T) {
	db, mock := newMockDB(t)
	repo := &ProjectRepository{db: db}

	rows := projectRows().
		AddRow("p1", "Acme", "acme", "A description here", "deadbeef", true, time.Now(), time.Now())
	mock.ExpectQuery(`SELECT (.+) FROM "projects" WHERE api_token = \$1 AND is_active = \$2`).
		WithArgs("deadbeef", true, 1).
		WillReturnRows(rows)

	project, err := repo.FindByToken(context.Background(), "deadbeef")
	require.NoError(t, err)
	assert.Equal(t, "p1", project.ID)
	assert.Equal(t, "acme", project.Slug)
}

func TestProjectRepository_FindByToken_NoMatch(t *testing.T) {
	db, mock := newMockDB(t)
	repo := &ProjectRepository{db: db}

	// wrong token and inactive project both produce zero rows; the caller
	// cannot tell them apart
	mock.ExpectQuery(`SELECT (.+) FROM "projects" WHERE api_token = \$1 AND is_active = \$2`).
		WithArgs("rotated-away", true, 1).
		WillReturnRows(projectRows())

	_, err := repo.FindByToken(context.Background(), "rotated-away")
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestProjectRepository_FindAll_NewestFirst(t *testing.T) {
	db, mock := newMockDB(t)
	repo := &ProjectRepository{db: db}

	rows := projectRows().
		AddRow("p2", "Newer", "newer", "Created later on", "t2", true, time.Now(), time.Now()).
		AddRow("p1", "Older", "older", "Created earlier on", "t1", true, time.Now().Add(-time.Hour), time.Now())
	mock.ExpectQuery(`SELECT (.+) FROM "projects" ORDER BY created_at DESC`).
		WillReturnRows(rows)

	projects, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "p2", projects[0].ID)
}

func TestProjectRepository_UpdateToken_RotatesInPlace(t *testing.T) {
	db, mock := newMockDB(t)
	repo := &ProjectRepository{db: db}

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "projects" SET "api_token"=\$1,"updated_at"=\$2 WHERE id = \$3`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.UpdateToken(context.Background(), "p1", "newtoken")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_UpdateToken_UnknownProject(t *testing.T) {
	db, mock := newMockDB(t)
	repo := &ProjectRepository{db: db}

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "projects" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.UpdateToken(context.Background(), "missing", "newtoken")
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
	assert.Equal(t, "Project not found", err.Error())
}

func TestProjectRepository_Delete_UnknownProject(t *testing.T) {
	db, mock := newMockDB(t)
	repo := &ProjectRepository{db: db}

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "projects" WHERE id = \$1`).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.Delete(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}
