package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/avc-dev/rewards/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const rewardsTable = "reward_codes"

var rewardColumns = []string{
	"id",
	"code",
	"description",
	"customer_email",
	"issued_by",
	"created_at",
	"redeemed_at",
}

// DatabaseStore реализует реестр кодов поверх PostgreSQL
type DatabaseStore struct {
	pool *pgxpool.Pool
}

// NewDatabaseStore создает новый DatabaseStore
func NewDatabaseStore(pool *pgxpool.Pool) *DatabaseStore {
	return &DatabaseStore{
		pool: pool,
	}
}

// Lookup ищет запись по точному совпадению кода
func (ds *DatabaseStore) Lookup(ctx context.Context, code model.Code) (model.RewardEntry, error) {
	query := `
		SELECT id, code, description, customer_email, issued_by, created_at, redeemed_at
		FROM reward_codes
		WHERE code = $1
	`

	entry, err := scanEntry(ds.pool.QueryRow(ctx, query, string(code)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.RewardEntry{}, fmt.Errorf("code %s: %w", code, model.ErrNotFound)
		}
		return model.RewardEntry{}, fmt.Errorf("failed to read from database: %w", err)
	}

	return entry, nil
}

// Insert вставляет запись; уникальность кода гарантирует первичный ключ
func (ds *DatabaseStore) Insert(ctx context.Context, entry model.RewardEntry) error {
	query := `
		INSERT INTO reward_codes (id, code, description, customer_email, issued_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (code) DO NOTHING
	`

	tag, err := ds.pool.Exec(ctx, query,
		entry.ID,
		string(entry.Code),
		entry.Description,
		entry.CustomerEmail,
		entry.IssuedBy,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert into database: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("code %s: %w", entry.Code, model.ErrAlreadyExists)
	}

	return nil
}

// Redeem гасит награду одним UPDATE, поэтому два параллельных погашения не пройдут оба
func (ds *DatabaseStore) Redeem(ctx context.Context, code model.Code, at time.Time) (model.RewardEntry, error) {
	query := `
		UPDATE reward_codes
		SET redeemed_at = $2
		WHERE code = $1 AND redeemed_at IS NULL
		RETURNING id, code, description, customer_email, issued_by, created_at, redeemed_at
	`

	entry, err := scanEntry(ds.pool.QueryRow(ctx, query, string(code), at))
	if err == nil {
		return entry, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return model.RewardEntry{}, fmt.Errorf("failed to redeem code: %w", err)
	}

	// Строка не обновлена: кода нет или он уже погашен
	if _, err := ds.Lookup(ctx, code); err != nil {
		return model.RewardEntry{}, err
	}

	return model.RewardEntry{}, fmt.Errorf("code %s: %w", code, model.ErrAlreadyRedeemed)
}

// List возвращает страницу записей и общее количество подходящих под фильтр
func (ds *DatabaseStore) List(ctx context.Context, params model.ListRewardsParams) ([]model.RewardEntry, int64, error) {
	countSQL, countArgs, listSQL, listArgs, err := buildListQueries(params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list query: %w", err)
	}

	var total int64
	if err := ds.pool.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count rewards: %w", err)
	}

	rows, err := ds.pool.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list rewards: %w", err)
	}
	defer rows.Close()

	entries := make([]model.RewardEntry, 0, params.PerPage)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan reward: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate rewards: %w", err)
	}

	return entries, total, nil
}

// likeEscaper экранирует шаблонные символы ILIKE, чтобы поиск был по подстроке, как в памяти
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// buildListQueries собирает запрос количества и запрос страницы с общими условиями
func buildListQueries(params model.ListRewardsParams) (string, []any, string, []any, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	conditions := sq.And{}

	if params.Search != "" {
		pattern := "%" + likeEscaper.Replace(params.Search) + "%"
		conditions = append(conditions, sq.Or{
			sq.Expr(`code ILIKE ? ESCAPE '\'`, pattern),
			sq.Expr(`description ILIKE ? ESCAPE '\'`, pattern),
			sq.Expr(`customer_email ILIKE ? ESCAPE '\'`, pattern),
		})
	}

	switch params.Status {
	case model.StatusActive:
		conditions = append(conditions, sq.Eq{"redeemed_at": nil})
	case model.StatusRedeemed:
		conditions = append(conditions, sq.NotEq{"redeemed_at": nil})
	}

	countQuery := psql.Select("COUNT(*)").From(rewardsTable)
	listQuery := psql.Select(rewardColumns...).From(rewardsTable)
	if len(conditions) > 0 {
		countQuery = countQuery.Where(conditions)
		listQuery = listQuery.Where(conditions)
	}

	dir := "DESC"
	if params.SortDir == model.SortAsc {
		dir = "ASC"
	}

	listQuery = listQuery.
		OrderBy("created_at "+dir, "code "+dir).
		Limit(uint64(params.PerPage)).
		Offset(uint64(params.Offset()))

	countSQL, countArgs, err := countQuery.ToSql()
	if err != nil {
		return "", nil, "", nil, err
	}

	listSQL, listArgs, err := listQuery.ToSql()
	if err != nil {
		return "", nil, "", nil, err
	}

	return countSQL, countArgs, listSQL, listArgs, nil
}

func scanEntry(row pgx.Row) (model.RewardEntry, error) {
	var (
		entry model.RewardEntry
		code  string
	)

	err := row.Scan(
		&entry.ID,
		&code,
		&entry.Description,
		&entry.CustomerEmail,
		&entry.IssuedBy,
		&entry.CreatedAt,
		&entry.RedeemedAt,
	)
	if err != nil {
		return model.RewardEntry{}, err
	}

	entry.Code = model.Code(code)

	return entry, nil
}
