package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/octobees/lead-finder/internal/dto"
	"github.com/octobees/lead-finder/internal/entity"
)

// BusinessesRepository describes persistence operations for discovered businesses.
type BusinessesRepository interface {
	BulkUpsert(ctx context.Context, businesses []entity.Business) (BulkUpsertResult, error)
	List(ctx context.Context, filter dto.ListFilter) ([]entity.Business, error)
}

// BulkUpsertResult summarises the number of rows inserted or updated.
type BulkUpsertResult struct {
	Inserted int `json:"inserted"`
	Updated  int `json:"updated"`
	Total    int `json:"total"`
}

type pgxPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

var _ pgxPool = (*pgxpool.Pool)(nil)

// PGXBusinessesRepository implements BusinessesRepository using pgx.
type PGXBusinessesRepository struct {
	pool pgxPool
}

// NewPGXBusinessesRepository wires a pgx backed repository.
func NewPGXBusinessesRepository(pool *pgxpool.Pool) *PGXBusinessesRepository {
	return &PGXBusinessesRepository{pool: pool}
}

// A later scan refreshes vendor fields but keeps the niche, location and
// scan of the first sighting when the new record carries none.
const upsertBusinessSQL = `
        INSERT INTO businesses (
            place_id, name, address, phone, phone_e164, website,
            niche, location, scan_id, source, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9::uuid, $10, NOW())
        ON CONFLICT (place_id) DO UPDATE SET
            name = EXCLUDED.name,
            address = EXCLUDED.address,
            phone = EXCLUDED.phone,
            phone_e164 = EXCLUDED.phone_e164,
            website = EXCLUDED.website,
            niche = COALESCE(EXCLUDED.niche, businesses.niche),
            location = COALESCE(EXCLUDED.location, businesses.location),
            scan_id = COALESCE(EXCLUDED.scan_id, businesses.scan_id),
            source = EXCLUDED.source,
            updated_at = NOW()`

// BulkUpsert persists a batch of businesses in one transaction.
func (r *PGXBusinessesRepository) BulkUpsert(ctx context.Context, businesses []entity.Business) (BulkUpsertResult, error) {
	var result BulkUpsertResult
	if len(businesses) == 0 {
		return result, nil
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return result, fmt.Errorf("start bulk upsert tx: %w", err)
	}
	defer tx.Rollback(ctx)

	for i := range businesses {
		b := &businesses[i]
		var inserted bool
		if err := tx.QueryRow(ctx, upsertBusinessSQL+" RETURNING xmax = 0", upsertArgs(b)...).Scan(&inserted); err != nil {
			return result, fmt.Errorf("bulk upsert business %q: %w", b.PlaceID, err)
		}
		if inserted {
			result.Inserted++
		} else {
			result.Updated++
		}
		result.Total++
	}

	if err := tx.Commit(ctx); err != nil {
		return result, fmt.Errorf("commit bulk upsert tx: %w", err)
	}
	return result, nil
}

func upsertArgs(b *entity.Business) []any {
	source := b.Source
	if source == "" {
		source = entity.SourceGoogleMaps
	}
	return []any{
		b.PlaceID,
		b.Name,
		stringOrNil(b.Address),
		stringOrNil(b.Phone),
		stringOrNil(b.PhoneE164),
		stringOrNil(b.Website),
		stringOrNil(b.Niche),
		stringOrNil(b.Location),
		uuidOrNil(b.ScanID),
		source,
	}
}

// List retrieves businesses matching the filter, most recently seen first.
func (r *PGXBusinessesRepository) List(ctx context.Context, filter dto.ListFilter) ([]entity.Business, error) {
	query := strings.Builder{}
	query.WriteString(`
        SELECT
            id::text,
            place_id,
            name,
            address,
            phone,
            phone_e164,
            website,
            niche,
            location,
            scan_id::text,
            source,
            created_at,
            updated_at
        FROM businesses`)

	var (
		clauses []string
		args    []any
		idx     = 1
	)

	if q := strings.TrimSpace(filter.Q); q != "" {
		pattern := fmt.Sprintf("%%%s%%", q)
		clauses = append(clauses, fmt.Sprintf("(name ILIKE $%d OR address ILIKE $%d)", idx, idx+1))
		args = append(args, pattern, pattern)
		idx += 2
	}
	if filter.Niche != "" {
		clauses = append(clauses, fmt.Sprintf("LOWER(niche) = LOWER($%d)", idx))
		args = append(args, filter.Niche)
		idx++
	}
	if filter.Location != "" {
		clauses = append(clauses, fmt.Sprintf("LOWER(location) = LOWER($%d)", idx))
		args = append(args, filter.Location)
		idx++
	}
	switch strings.ToLower(filter.WebsiteStatus) {
	case "missing":
		clauses = append(clauses, "NOT has_website")
	case "available":
		clauses = append(clauses, "has_website")
	}
	if filter.ScanID != nil {
		clauses = append(clauses, fmt.Sprintf("scan_id = $%d::uuid", idx))
		args = append(args, filter.ScanID.String())
		idx++
	}

	if len(clauses) > 0 {
		query.WriteString(" WHERE ")
		query.WriteString(strings.Join(clauses, " AND "))
	}
	query.WriteString(" ORDER BY updated_at DESC, name ASC")

	page, perPage := Paginate(filter.Page, filter.PerPage)
	query.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", idx, idx+1))
	args = append(args, perPage, (page-1)*perPage)

	rows, err := r.pool.Query(ctx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list businesses: %w", err)
	}
	defer rows.Close()

	return scanBusinesses(rows)
}

// Paginate applies the listing defaults: page 1, 20 per page, at most 100.
func Paginate(page, perPage int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 20
	}
	if perPage > 100 {
		perPage = 100
	}
	return page, perPage
}

func scanBusinesses(rows pgx.Rows) ([]entity.Business, error) {
	var out []entity.Business
	for rows.Next() {
		var (
			id, placeID, name, source string
			address, phone, phoneE164 sql.NullString
			website, niche, location  sql.NullString
			scanID                    sql.NullString
			createdAt, updatedAt      time.Time
		)
		if err := rows.Scan(
			&id, &placeID, &name, &address, &phone, &phoneE164, &website,
			&niche, &location, &scanID, &source, &createdAt, &updatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan business: %w", err)
		}

		parsedID, err := uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("parse business id: %w", err)
		}
		origin := entity.Origin{Niche: niche.String, Location: location.String}
		if scanID.Valid {
			parsed, err := uuid.Parse(scanID.String)
			if err != nil {
				return nil, fmt.Errorf("parse scan id: %w", err)
			}
			origin.ScanID = &parsed
		}

		b := entity.NewBusiness(placeID, name, address.String, phone.String, website.String, origin)
		b.ID = &parsedID
		b.PhoneE164 = phoneE164.String
		b.Source = source
		b.CreatedAt = &createdAt
		b.UpdatedAt = &updatedAt
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate businesses: %w", err)
	}
	return out, nil
}

// stringOrNil stores the value as given so the generated has_website column
// agrees with entity.Business.HasWebsite.
func stringOrNil(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func uuidOrNil(id *uuid.UUID) any {
	if id == nil {
		return nil
	}
	return id.String()
}
