package resources

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/edtechlab/coursehub/internal/server/models"
)

// scanResources drains a result set of full resource rows. created_at is
// stored as unix nanoseconds in both backends.
func scanResources(rows *sql.Rows) ([]models.Resource, error) {
	var out []models.Resource
	for rows.Next() {
		var (
			res models.Resource
			ns  int64
		)
		if err := rows.Scan(&res.ID, &res.CourseID, &res.ResourceURL, &res.PosterUsername, &ns); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		res.CreatedAt = time.Unix(0, ns)
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}
