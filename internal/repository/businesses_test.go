package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/octobees/lead-finder/internal/dto"
	"github.com/octobees/lead-finder/internal/entity"
)

var businessColumns = []string{
	"id", "place_id", "name", "address", "phone", "phone_e164", "website",
	"niche", "location", "scan_id", "source", "created_at", "updated_at",
}

func newMockRepo(t *testing.T) (*PGXBusinessesRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return &PGXBusinessesRepository{pool: mock}, mock
}

func TestBulkUpsert(t *testing.T) {
	repo, mock := newMockRepo(t)
	records := []entity.Business{
		entity.NewBusiness("p1", "Acme", "", "", "", entity.Origin{}),
		entity.NewBusiness("p2", "Beta", "", "", "https://beta.example", entity.Origin{}),
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("RETURNING xmax = 0")).
		WithArgs("p1", "Acme", nil, nil, nil, nil, nil, nil, nil, entity.SourceGoogleMaps).
		WillReturnRows(pgxmock.NewRows([]string{"inserted"}).AddRow(true))
	mock.ExpectQuery(regexp.QuoteMeta("RETURNING xmax = 0")).
		WithArgs("p2", "Beta", nil, nil, nil, "https://beta.example", nil, nil, nil, entity.SourceGoogleMaps).
		WillReturnRows(pgxmock.NewRows([]string{"inserted"}).AddRow(false))
	mock.ExpectCommit()

	res, err := repo.BulkUpsert(context.Background(), records)
	require.NoError(t, err)
	assert.Equal(t, BulkUpsertResult{Inserted: 1, Updated: 1, Total: 2}, res)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBulkUpsert_RollsBackOnError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO businesses").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(errors.New("constraint violation"))
	mock.ExpectRollback()

	_, err := repo.BulkUpsert(context.Background(), []entity.Business{entity.NewBusiness("p1", "Acme", "", "", "", entity.Origin{})})
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBulkUpsert_WhitespaceWebsiteKept(t *testing.T) {
	repo, mock := newMockRepo(t)
	b := entity.NewBusiness("p1", "Acme", "", "", " ", entity.Origin{})
	require.True(t, b.HasWebsite)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("RETURNING xmax = 0")).
		WithArgs("p1", "Acme", nil, nil, nil, " ", nil, nil, nil, entity.SourceGoogleMaps).
		WillReturnRows(pgxmock.NewRows([]string{"inserted"}).AddRow(true))
	mock.ExpectCommit()

	res, err := repo.BulkUpsert(context.Background(), []entity.Business{b})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Inserted)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBulkUpsert_Empty(t *testing.T) {
	repo, mock := newMockRepo(t)
	res, err := repo.BulkUpsert(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, res.Total)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList(t *testing.T) {
	repo, mock := newMockRepo(t)
	scanID := uuid.MustParse("22222222-2222-2222-2222-222222222222")
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	rows := pgxmock.NewRows(businessColumns).
		AddRow("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa", "p1", "Acme Plumbing", "1 Main St", "(512) 555-0100", "+15125550100", nil,
			"plumbers", "Austin", scanID.String(), entity.SourceGoogleMaps, created, created)

	mock.ExpectQuery(`WHERE \(name ILIKE \$1 OR address ILIKE \$2\) AND LOWER\(niche\) = LOWER\(\$3\) AND NOT has_website AND scan_id = \$4::uuid ORDER BY updated_at DESC, name ASC LIMIT \$5 OFFSET \$6`).
		WithArgs("%acme%", "%acme%", "plumbers", scanID.String(), 100, 100).
		WillReturnRows(rows)

	got, err := repo.List(context.Background(), dto.ListFilter{
		Q: "acme", Niche: "plumbers", WebsiteStatus: "missing", ScanID: &scanID, Page: 2, PerPage: 500,
	})
	require.NoError(t, err)
	require.Len(t, got, 1)

	b := got[0]
	assert.Equal(t, "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa", b.ID.String())
	assert.Equal(t, "Acme Plumbing", b.Name)
	assert.Equal(t, "+15125550100", b.PhoneE164)
	assert.False(t, b.HasWebsite)
	require.NotNil(t, b.ScanID)
	assert.Equal(t, scanID, *b.ScanID)
	assert.Equal(t, created, *b.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList_Defaults(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`FROM businesses ORDER BY updated_at DESC, name ASC LIMIT \$1 OFFSET \$2`).
		WithArgs(20, 0).
		WillReturnRows(pgxmock.NewRows(businessColumns))

	got, err := repo.List(context.Background(), dto.ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPaginate(t *testing.T) {
	tests := []struct{ page, perPage, wantPage, wantPer int }{
		{0, 0, 1, 20},
		{3, 50, 3, 50},
		{-1, 1000, 1, 100},
	}
	for _, tt := range tests {
		page, per := Paginate(tt.page, tt.perPage)
		assert.Equal(t, tt.wantPage, page)
		assert.Equal(t, tt.wantPer, per)
	}
}
