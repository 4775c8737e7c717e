package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont-smarttasks/internal/common"
	"github.com/cleitonmarx/symbiont-smarttasks/internal/domain"
	"github.com/cleitonmarx/symbiont-smarttasks/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var (
	taskFields = []string{
		"id",
		"owner_id",
		"parent_id",
		"title",
		"priority",
		"status",
		"embedding",
		"created_at",
		"updated_at",
	}
)

// TaskRepository implements the domain.TaskRepository interface using PostgreSQL as the storage backend.
type TaskRepository struct {
	sb squirrel.StatementBuilderType
}

// NewTaskRepository creates a new instance of TaskRepository.
func NewTaskRepository(br squirrel.BaseRunner) TaskRepository {
	return TaskRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// ListTasks lists the owner's tasks, newest first.
func (tr TaskRepository) ListTasks(ctx context.Context, ownerID uuid.UUID, params domain.ListTasksParams) ([]domain.Task, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	qry := tr.sb.
		Select(taskFields...).
		From("tasks").
		Where(squirrel.Eq{"owner_id": ownerID})

	if params.ParentID != nil {
		qry = qry.Where(squirrel.Eq{"parent_id": *params.ParentID})
	} else {
		qry = qry.Where(squirrel.Eq{"parent_id": nil})
	}
	if params.Status != nil {
		qry = qry.Where(squirrel.Eq{"status": *params.Status})
	}
	if params.Priority != nil {
		qry = qry.Where(squirrel.Eq{"priority": *params.Priority})
	}

	tasks, err := queryTasks(spanCtx, qry.OrderBy("created_at DESC", "id"))
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return tasks, nil
}

// GetTask retrieves a task by its ID.
func (tr TaskRepository) GetTask(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (domain.Task, bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	task, err := scanTask(tr.sb.
		Select(taskFields...).
		From("tasks").
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"owner_id": ownerID}).
		QueryRowContext(spanCtx))

	if errors.Is(err, sql.ErrNoRows) {
		return domain.Task{}, false, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Task{}, false, err
	}
	return task, true, nil
}

// CreateTask inserts a new task. The embedding is always written later.
func (tr TaskRepository) CreateTask(ctx context.Context, task domain.Task) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	_, err := tr.sb.
		Insert("tasks").
		Columns(
			"id",
			"owner_id",
			"parent_id",
			"title",
			"priority",
			"status",
			"created_at",
			"updated_at",
		).
		Values(
			task.ID,
			task.OwnerID,
			task.ParentID,
			task.Title,
			task.Priority,
			task.Status,
			task.CreatedAt,
			task.UpdatedAt,
		).
		ExecContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// UpdateTask writes title, priority and status.
// The embedding is cleared by the same statement when the stored title differs from the new one.
func (tr TaskRepository) UpdateTask(ctx context.Context, task domain.Task) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	_, err := tr.sb.
		Update("tasks").
		Set("title", task.Title).
		Set("priority", task.Priority).
		Set("status", task.Status).
		Set("embedding", squirrel.Expr("CASE WHEN title = ? THEN embedding ELSE NULL END", task.Title)).
		Set("updated_at", task.UpdatedAt).
		Where(squirrel.Eq{"id": task.ID}).
		Where(squirrel.Eq{"owner_id": task.OwnerID}).
		ExecContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// DeleteTask deletes a task. Subtasks are removed by the foreign key cascade.
func (tr TaskRepository) DeleteTask(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	res, err := tr.sb.
		Delete("tasks").
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"owner_id": ownerID}).
		ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return false, err
	}

	n, err := res.RowsAffected()
	if telemetry.RecordErrorAndStatus(span, err) {
		return false, err
	}
	return n > 0, nil
}

// ListTasksWithoutEmbedding lists the owner's tasks and subtasks that have no embedding, oldest first.
func (tr TaskRepository) ListTasksWithoutEmbedding(ctx context.Context, ownerID uuid.UUID) ([]domain.Task, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	tasks, err := queryTasks(spanCtx, tr.sb.
		Select(taskFields...).
		From("tasks").
		Where(squirrel.Eq{"owner_id": ownerID}).
		Where(squirrel.Eq{"embedding": nil}).
		OrderBy("created_at ASC", "id"))

	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return tasks, nil
}

// UpdateEmbedding stores the embedding only when the task still carries the title it was computed from.
// It returns false when no row matched.
func (tr TaskRepository) UpdateEmbedding(ctx context.Context, ownerID uuid.UUID, id uuid.UUID, title string, embedding []float64) (bool, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("dimensions", len(embedding)),
	))
	defer span.End()

	res, err := tr.sb.
		Update("tasks").
		Set("embedding", toVector(embedding)).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"owner_id": ownerID}).
		Where(squirrel.Eq{"title": title}).
		ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return false, err
	}

	n, err := res.RowsAffected()
	if telemetry.RecordErrorAndStatus(span, err) {
		return false, err
	}
	return n > 0, nil
}

// SearchBySimilarity scans the owner's embedded tasks by cosine distance.
func (tr TaskRepository) SearchBySimilarity(ctx context.Context, query domain.SimilarityQuery) ([]domain.SearchResult, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Float64("threshold", query.Threshold),
		attribute.Int("limit", query.Limit),
	))
	defer span.End()

	if query.Limit <= 0 {
		err := domain.NewValidationErr("limit must be greater than 0")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	vec := toVector(query.Embedding)
	rows, err := tr.sb.
		Select(taskFields...).
		Column(squirrel.Expr("1 - (embedding <=> ?) AS similarity", vec)).
		From("tasks").
		Where(squirrel.Eq{"owner_id": query.OwnerID}).
		Where(squirrel.NotEq{"embedding": nil}).
		Where(squirrel.Expr("1 - (embedding <=> ?) >= ?", vec, query.Threshold)).
		// Distance is the only sort key so the HNSW index can serve the scan; ties are broken by the caller.
		OrderByClause(squirrel.Expr("embedding <=> ? ASC", vec)).
		Limit(uint64(query.Limit)).
		QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var results []domain.SearchResult
	for rows.Next() {
		var (
			r        domain.SearchResult
			parentID uuid.NullUUID
			stored   *pgvector.Vector
		)
		err := rows.Scan(
			&r.Task.ID,
			&r.Task.OwnerID,
			&parentID,
			&r.Task.Title,
			&r.Task.Priority,
			&r.Task.Status,
			&stored,
			&r.Task.CreatedAt,
			&r.Task.UpdatedAt,
			&r.Similarity,
		)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		fillOptional(&r.Task, parentID, stored)
		results = append(results, r)
	}

	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return results, nil
}

// InitTaskRepository is a Symbiont initializer for TaskRepository.
type InitTaskRepository struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the TaskRepository in the dependency container.
func (tr InitTaskRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.TaskRepository](NewTaskRepository(tr.DB))
	return ctx, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (domain.Task, error) {
	var (
		task     domain.Task
		parentID uuid.NullUUID
		stored   *pgvector.Vector
	)
	err := row.Scan(
		&task.ID,
		&task.OwnerID,
		&parentID,
		&task.Title,
		&task.Priority,
		&task.Status,
		&stored,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		return domain.Task{}, err
	}
	fillOptional(&task, parentID, stored)
	return task, nil
}

func queryTasks(ctx context.Context, qry squirrel.SelectBuilder) ([]domain.Task, error) {
	rows, err := qry.QueryContext(ctx)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var tasks []domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

func fillOptional(task *domain.Task, parentID uuid.NullUUID, stored *pgvector.Vector) {
	if parentID.Valid {
		task.ParentID = &parentID.UUID
	}
	if stored != nil {
		task.Embedding = common.ToFloat64(stored.Slice())
	}
}

func toVector(embedding []float64) pgvector.Vector {
	return pgvector.NewVector(common.ToFloat32(embedding, domain.EmbeddingDimensions))
}
