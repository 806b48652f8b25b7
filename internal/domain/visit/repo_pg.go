package visit

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const visitCols = `id, visit_number, patient_id, visit_date, visit_date_text, department,
	weight, height, temperature, pulse, bp_systolic, bp_diastolic, created_at, updated_at`

func (r *repoPG) Create(ctx context.Context, v *Visit) error {
	v.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO visit (
			id, visit_number, patient_id, visit_date, visit_date_text, department,
			weight, height, temperature, pulse, bp_systolic, bp_diastolic
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		v.ID, v.VisitNumber, v.PatientID, v.VisitDate, v.VisitDateText, v.Department,
		v.Weight, v.Height, v.Temperature, v.Pulse, v.BPSystolic, v.BPDiastolic,
	)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Visit, error) {
	return scanVisit(r.pool.QueryRow(ctx, `SELECT `+visitCols+` FROM visit WHERE id = $1`, id))
}

func (r *repoPG) GetByVisitNumber(ctx context.Context, visitNumber string) (*Visit, error) {
	return scanVisit(r.pool.QueryRow(ctx, `SELECT `+visitCols+` FROM visit WHERE visit_number = $1`, visitNumber))
}

func (r *repoPG) Update(ctx context.Context, v *Visit) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE visit SET
			visit_number=$2, patient_id=$3, visit_date=$4, visit_date_text=$5, department=$6,
			weight=$7, height=$8, temperature=$9, pulse=$10, bp_systolic=$11, bp_diastolic=$12,
			updated_at=NOW()
		WHERE id = $1`,
		v.ID, v.VisitNumber, v.PatientID, v.VisitDate, v.VisitDateText, v.Department,
		v.Weight, v.Height, v.Temperature, v.Pulse, v.BPSystolic, v.BPDiastolic,
	)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM visit WHERE id = $1`, id)
	return err
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Visit, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM visit WHERE patient_id = $1`, patientID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+visitCols+` FROM visit WHERE patient_id = $1
		 ORDER BY COALESCE(visit_date, created_at) DESC LIMIT $2 OFFSET $3`,
		patientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var visits []*Visit
	for rows.Next() {
		v, err := scanVisit(rows)
		if err != nil {
			return nil, 0, err
		}
		visits = append(visits, v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return visits, total, nil
}

// FindInRange evaluates the range predicate against both date columns: legacy
// rows carry only visit_date_text in YYYY-MM-DD form, so comparing the typed
// column alone would silently drop them.
func (r *repoPG) FindInRange(ctx context.Context, from, to time.Time, department string) ([]*WithPatient, error) {
	query := `
		SELECT v.id, v.visit_number, v.patient_id, v.visit_date, v.visit_date_text, v.department,
			v.weight, v.height, v.temperature, v.pulse, v.bp_systolic, v.bp_diastolic,
			v.created_at, v.updated_at,
			p.id, p.ln, p.title, p.first_name, p.last_name, p.gender,
			p.birth_date, p.age, p.height, p.rights, p.phone, p.address,
			p.created_at, p.updated_at
		FROM visit v
		JOIN patient p ON p.id = v.patient_id
		WHERE (
			(v.visit_date >= $1 AND v.visit_date <= $2)
			OR (v.visit_date_text >= $3 AND v.visit_date_text <= $4)
		)`
	args := []interface{}{from, to, from.Format("2006-01-02"), to.Format("2006-01-02")}
	if department != "" {
		query += ` AND v.department = $5`
		args = append(args, department)
	}
	query += ` ORDER BY COALESCE(v.visit_date, v.created_at), v.visit_number`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*WithPatient
	for rows.Next() {
		var vp WithPatient
		if err := rows.Scan(
			&vp.ID, &vp.VisitNumber, &vp.PatientID, &vp.VisitDate, &vp.VisitDateText, &vp.Department,
			&vp.Weight, &vp.Height, &vp.Temperature, &vp.Pulse, &vp.BPSystolic, &vp.BPDiastolic,
			&vp.CreatedAt, &vp.UpdatedAt,
			&vp.Patient.ID, &vp.Patient.LN, &vp.Patient.Title, &vp.Patient.FirstName, &vp.Patient.LastName,
			&vp.Patient.Gender, &vp.Patient.BirthDate, &vp.Patient.Age, &vp.Patient.Height,
			&vp.Patient.Rights, &vp.Patient.Phone, &vp.Patient.Address,
			&vp.Patient.CreatedAt, &vp.Patient.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &vp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func scanVisit(row pgx.Row) (*Visit, error) {
	var v Visit
	err := row.Scan(
		&v.ID, &v.VisitNumber, &v.PatientID, &v.VisitDate, &v.VisitDateText, &v.Department,
		&v.Weight, &v.Height, &v.Temperature, &v.Pulse, &v.BPSystolic, &v.BPDiastolic,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
