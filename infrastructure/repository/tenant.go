package repository

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/clearpipe/outreach-insights-api/infrastructure/database/postgres"
	"github.com/clearpipe/outreach-insights-api/internal/domain"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

const tenantsTable = "tenants"

type TenantRepository interface {
	CreateTenant(tenant *domain.Tenant) (*domain.Tenant, error)
	GetTenantBySubdomain(subdomain string) (*domain.Tenant, error)
	ListTenants() ([]*domain.Tenant, error)
	UpdateAPIKeys(subdomain string, keys domain.APIKeys) error
	UpdateFeatures(subdomain string, features domain.Features) error
}

type tenantRepository struct {
	conn *postgres.Connection
}

func NewTenantRepository(conn *postgres.Connection) TenantRepository {
	return &tenantRepository{
		conn: conn,
	}
}

var tenantColumns = []string{
	"id", "subdomain", "name",
	"instantly_api_key", "lemlist_api_key", "lemlist_account_email",
	"enabled_features", "created_at", "updated_at",
}

func (r *tenantRepository) CreateTenant(tenant *domain.Tenant) (*domain.Tenant, error) {
	queryBuilder := squirrel.
		Insert(tenantsTable).
		Columns(
			"subdomain", "name",
			"instantly_api_key", "lemlist_api_key", "lemlist_account_email",
			"enabled_features",
		).
		Values(
			tenant.Subdomain,
			tenant.Name,
			tenant.APIKeys.Instantly,
			tenant.APIKeys.Lemlist,
			tenant.APIKeys.LemlistAccountEmail,
			pq.Array(tenant.Features.EnabledFeatures),
		).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	tenantSQL, tenantArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(tenantSQL, tenantArgs...).Scan(&tenant.ID, &tenant.CreatedAt, &tenant.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return tenant, nil
}

func (r *tenantRepository) GetTenantBySubdomain(subdomain string) (*domain.Tenant, error) {
	queryBuilder := squirrel.
		Select(tenantColumns...).
		From(tenantsTable).
		Where(squirrel.Eq{"subdomain": subdomain}).
		PlaceholderFormat(squirrel.Dollar)

	tenantSQL, tenantArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	tenant, err := scanTenant(r.conn.QueryRow(tenantSQL, tenantArgs...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		logrus.WithFields(logrus.Fields{
			"subdomain": subdomain,
			"error":     err.Error(),
		}).Error("tenants: failed to fetch tenant by subdomain")
		return nil, err
	}

	return tenant, nil
}

func (r *tenantRepository) ListTenants() ([]*domain.Tenant, error) {
	queryBuilder := squirrel.
		Select(tenantColumns...).
		From(tenantsTable).
		OrderBy("subdomain ASC").
		PlaceholderFormat(squirrel.Dollar)

	tenantSQL, tenantArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.DB.Query(tenantSQL, tenantArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tenants := make([]*domain.Tenant, 0)
	for rows.Next() {
		tenant, err := scanTenant(rows)
		if err != nil {
			return nil, err
		}
		tenants = append(tenants, tenant)
	}

	return tenants, rows.Err()
}

func (r *tenantRepository) UpdateAPIKeys(subdomain string, keys domain.APIKeys) error {
	queryBuilder := squirrel.
		Update(tenantsTable).
		Set("instantly_api_key", keys.Instantly).
		Set("lemlist_api_key", keys.Lemlist).
		Set("lemlist_account_email", keys.LemlistAccountEmail).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"subdomain": subdomain}).
		PlaceholderFormat(squirrel.Dollar)

	tenantSQL, tenantArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	result, err := r.conn.DB.Exec(tenantSQL, tenantArgs...)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *tenantRepository) UpdateFeatures(subdomain string, features domain.Features) error {
	queryBuilder := squirrel.
		Update(tenantsTable).
		Set("enabled_features", pq.Array(features.EnabledFeatures)).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"subdomain": subdomain}).
		PlaceholderFormat(squirrel.Dollar)

	tenantSQL, tenantArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	result, err := r.conn.DB.Exec(tenantSQL, tenantArgs...)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTenant(row rowScanner) (*domain.Tenant, error) {
	tenant := &domain.Tenant{}
	features := pq.StringArray{}

	err := row.Scan(
		&tenant.ID,
		&tenant.Subdomain,
		&tenant.Name,
		&tenant.APIKeys.Instantly,
		&tenant.APIKeys.Lemlist,
		&tenant.APIKeys.LemlistAccountEmail,
		&features,
		&tenant.CreatedAt,
		&tenant.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	tenant.Features.EnabledFeatures = features

	return tenant, nil
}
