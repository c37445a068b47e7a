package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"

	"pavexpert/models"
)

// SupplierRepository handles database operations for suppliers and their branches
type SupplierRepository struct {
	db    *sql.DB
	types *pgtype.Map
}

// NewSupplierRepository creates a new SupplierRepository
func NewSupplierRepository(db *sql.DB) *SupplierRepository {
	return &SupplierRepository{db: db, types: pgtype.NewMap()}
}

// Ensure SupplierRepository implements SupplierRepositoryInterface
var _ SupplierRepositoryInterface = (*SupplierRepository)(nil)

// ListBranches retrieves every supplier branch ordered by cross street.
// material, when set, keeps only suppliers carrying that material (case-insensitive).
func (r *SupplierRepository) ListBranches(ctx context.Context, material string) ([]models.SupplierBranch, error) {
	query := `
		SELECT
			sb.id,
			COALESCE(sb.cross_street, ''),
			sb.branch_name,
			COALESCE(sb.phone, ''),
			COALESCE(sb.address, ''),
			sb.latitude,
			sb.longitude,
			sb.is_main_branch,
			s.id,
			s.supplier_name,
			COALESCE(s.website_url, ''),
			s.brand_logos,
			COALESCE(array_agg(hm.id ORDER BY hm.material_name) FILTER (WHERE hm.id IS NOT NULL), '{}') AS material_ids,
			COALESCE(array_agg(hm.material_name ORDER BY hm.material_name) FILTER (WHERE hm.id IS NOT NULL), '{}') AS material_names
		FROM supplier_branches sb
		INNER JOIN suppliers s ON s.id = sb.supplier_id
		LEFT JOIN supplier_materials sm ON sm.supplier_id = s.id
		LEFT JOIN hardscape_materials hm ON hm.id = sm.material_id
		WHERE ($1 = '' OR EXISTS (
			SELECT 1 FROM supplier_materials sm2
			INNER JOIN hardscape_materials hm2 ON hm2.id = sm2.material_id
			WHERE sm2.supplier_id = s.id AND LOWER(hm2.material_name) = LOWER($1)
		))
		GROUP BY sb.id, s.id
		ORDER BY sb.cross_street ASC NULLS LAST, sb.id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, strings.TrimSpace(material))
	if err != nil {
		log.Printf("❌ Error querying supplier branches: %v", err)
		return nil, fmt.Errorf("failed to query supplier branches: %w", err)
	}
	defer rows.Close()

	branches := []models.SupplierBranch{}
	for rows.Next() {
		var b models.SupplierBranch
		var lat, lng sql.NullFloat64
		var materialIDs []int32
		var materialNames []string

		err := rows.Scan(
			&b.ID,
			&b.CrossStreet,
			&b.BranchName,
			&b.Phone,
			&b.Address,
			&lat,
			&lng,
			&b.IsMainBranch,
			&b.Supplier.ID,
			&b.Supplier.SupplierName,
			&b.Supplier.WebsiteURL,
			r.types.SQLScanner(&b.Supplier.BrandLogos),
			r.types.SQLScanner(&materialIDs),
			r.types.SQLScanner(&materialNames),
		)
		if err != nil {
			log.Printf("❌ Error scanning supplier branch: %v", err)
			continue
		}

		if lat.Valid {
			b.Latitude = &lat.Float64
		}
		if lng.Valid {
			b.Longitude = &lng.Float64
		}
		if b.Supplier.BrandLogos == nil {
			b.Supplier.BrandLogos = []string{}
		}
		b.Supplier.Materials = zipMaterials(materialIDs, materialNames)

		branches = append(branches, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate supplier branches: %w", err)
	}

	return branches, nil
}

func zipMaterials(ids []int32, names []string) []models.Material {
	materials := make([]models.Material, 0, len(ids))
	for i, id := range ids {
		if i >= len(names) {
			break
		}
		materials = append(materials, models.Material{ID: int(id), Name: names[i]})
	}
	return materials
}
