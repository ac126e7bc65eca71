package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"clinica/internal/domain"
)

type UserRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepo {
	return &UserRepo{db: db}
}

const userColumns = `id, nombre, apellido, dni, email, password_hash, rol, activo, created_at, updated_at`

func (r *UserRepo) Create(ctx context.Context, user domain.CreateUserDTO) (int64, error) {
	query := `
		INSERT INTO usuarios (nombre, apellido, dni, email, password_hash, rol, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, true, $7, $7)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		user.FirstName,
		user.LastName,
		user.DNI,
		user.Email,
		user.Password,
		user.Role,
		time.Now(),
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("error al crear el usuario: %w", err)
	}

	return id, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM usuarios WHERE id = $1`
	return r.scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM usuarios WHERE email = $1`
	return r.scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *UserRepo) GetByDNI(ctx context.Context, dni string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM usuarios WHERE dni = $1`
	return r.scanUser(r.db.QueryRow(ctx, query, dni))
}

func (r *UserRepo) scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.DNI,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.IsActive,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("error al obtener el usuario: %w", err)
	}

	return &user, nil
}

func (r *UserRepo) Update(ctx context.Context, id int64, user domain.UpdateUserDTO) error {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if user.FirstName != nil {
		current.FirstName = *user.FirstName
	}
	if user.LastName != nil {
		current.LastName = *user.LastName
	}
	if user.Email != nil {
		current.Email = *user.Email
	}
	if user.IsActive != nil {
		current.IsActive = *user.IsActive
	}

	query := `
		UPDATE usuarios
		SET nombre = $1, apellido = $2, email = $3, activo = $4, updated_at = $5
		WHERE id = $6
	`

	_, err = r.db.Exec(ctx, query,
		current.FirstName,
		current.LastName,
		current.Email,
		current.IsActive,
		time.Now(),
		id,
	)

	if err != nil {
		return fmt.Errorf("error al actualizar el usuario: %w", err)
	}

	return nil
}

func (r *UserRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	query := `UPDATE usuarios SET password_hash = $1, updated_at = $2 WHERE id = $3`

	tag, err := r.db.Exec(ctx, query, passwordHash, time.Now(), id)
	if err != nil {
		return fmt.Errorf("error al actualizar la contraseña: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *UserRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM usuarios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error al eliminar el usuario: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *UserRepo) List(ctx context.Context, limit, offset int) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM usuarios ORDER BY id LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error al obtener la lista de usuarios: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		err := rows.Scan(
			&user.ID,
			&user.FirstName,
			&user.LastName,
			&user.DNI,
			&user.Email,
			&user.PasswordHash,
			&user.Role,
			&user.IsActive,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error al escanear el usuario: %w", err)
		}
		users = append(users, user)
	}

	return users, rows.Err()
}
