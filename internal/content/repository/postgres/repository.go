package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Sonai2004/My-Portfolio/internal/content/domain"
	apperrors "github.com/Sonai2004/My-Portfolio/internal/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of pgxpool.Pool the repository needs; it is also
// satisfied by pgxmock pools in tests.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db DB
}

func NewPostgresContentRepository(db DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const projectColumns = `id, title, description, tech_stack, image_url, live_url,
		github_url, featured, display_order, created_at, updated_at`

func scanProject(row pgx.Row) (*domain.Project, error) {
	var p domain.Project
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.TechStack, &p.ImageURL,
		&p.LiveURL, &p.GithubURL, &p.Featured, &p.DisplayOrder, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostgresRepository) ListProjects(ctx context.Context) ([]domain.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects
		ORDER BY display_order, created_at;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, *p)
	}

	return projects, rows.Err()
}

func (r *PostgresRepository) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects
		WHERE id = $1
		LIMIT 1;
	`
	p, err := scanProject(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return p, nil
}

func (r *PostgresRepository) CreateProject(ctx context.Context, p *domain.Project) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO projects (id, title, description, tech_stack, image_url, live_url,
            github_url, featured, display_order, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    `, p.ID, p.Title, p.Description, p.TechStack, p.ImageURL, p.LiveURL,
		p.GithubURL, p.Featured, p.DisplayOrder, p.CreatedAt, p.UpdatedAt)

	return err
}

func (r *PostgresRepository) UpdateProject(ctx context.Context, p *domain.Project) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE projects
		SET title = $2, description = $3, tech_stack = $4, live_url = $5,
		    github_url = $6, featured = $7, display_order = $8, updated_at = now()
		WHERE id = $1
	`, p.ID, p.Title, p.Description, p.TechStack, p.LiveURL, p.GithubURL,
		p.Featured, p.DisplayOrder)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) SetProjectImage(ctx context.Context, id, imageURL string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE projects SET image_url = $2, updated_at = now() WHERE id = $1
	`, id, imageURL)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteProject(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) ListSkills(ctx context.Context) ([]domain.Skill, error) {
	query := `
		SELECT id, name, category, proficiency, display_order, created_at, updated_at
		FROM skills
		ORDER BY display_order, name;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	defer rows.Close()

	var skills []domain.Skill
	for rows.Next() {
		var s domain.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.Proficiency,
			&s.DisplayOrder, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		skills = append(skills, s)
	}

	return skills, rows.Err()
}

func (r *PostgresRepository) CreateSkill(ctx context.Context, s *domain.Skill) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO skills (id, name, category, proficiency, display_order, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `, s.ID, s.Name, s.Category, s.Proficiency, s.DisplayOrder, s.CreatedAt, s.UpdatedAt)

	return err
}

func (r *PostgresRepository) UpdateSkill(ctx context.Context, s *domain.Skill) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE skills
		SET name = $2, category = $3, proficiency = $4, display_order = $5, updated_at = now()
		WHERE id = $1
	`, s.ID, s.Name, s.Category, s.Proficiency, s.DisplayOrder)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteSkill(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) ListAchievements(ctx context.Context) ([]domain.Achievement, error) {
	query := `
		SELECT id, title, description, organization, achieved_on, url, created_at, updated_at
		FROM achievements
		ORDER BY achieved_on DESC NULLS LAST, created_at DESC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list achievements: %w", err)
	}
	defer rows.Close()

	var achievements []domain.Achievement
	for rows.Next() {
		var a domain.Achievement
		if err := rows.Scan(&a.ID, &a.Title, &a.Description, &a.Organization,
			&a.AchievedOn, &a.URL, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan achievement: %w", err)
		}
		achievements = append(achievements, a)
	}

	return achievements, rows.Err()
}

func (r *PostgresRepository) CreateAchievement(ctx context.Context, a *domain.Achievement) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO achievements (id, title, description, organization, achieved_on, url, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `, a.ID, a.Title, a.Description, a.Organization, a.AchievedOn, a.URL, a.CreatedAt, a.UpdatedAt)

	return err
}

func (r *PostgresRepository) UpdateAchievement(ctx context.Context, a *domain.Achievement) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE achievements
		SET title = $2, description = $3, organization = $4, achieved_on = $5, url = $6, updated_at = now()
		WHERE id = $1
	`, a.ID, a.Title, a.Description, a.Organization, a.AchievedOn, a.URL)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteAchievement(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM achievements WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
