package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/cleitonmarx/symbiont-smarttasks/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitOfWork_Execute(t *testing.T) {
	deleteQuery := "DELETE FROM tasks WHERE id = $1 AND owner_id = $2"
	deleteTask := func(uow domain.UnitOfWork) error {
		_, err := uow.Task().DeleteTask(context.Background(), fixedOwnerID, fixedTaskID)
		return err
	}

	tests := map[string]struct {
		setupMock func(sqlmock.Sqlmock)
		fn        func(uow domain.UnitOfWork) error
		expectErr bool
	}{
		"success-commit": {
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectExec(deleteQuery).WithArgs(fixedTaskID, fixedOwnerID).WillReturnResult(sqlmock.NewResult(0, 1))
				m.ExpectCommit()
			},
			fn: deleteTask,
		},
		"rollback-on-error": {
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectExec(deleteQuery).WithArgs(fixedTaskID, fixedOwnerID).WillReturnError(errors.New("delete error"))
				m.ExpectRollback()
			},
			fn:        deleteTask,
			expectErr: true,
		},
		"begin-transaction-error": {
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectBegin().WillReturnError(errors.New("begin error"))
			},
			fn:        func(uow domain.UnitOfWork) error { return nil },
			expectErr: true,
		},
		"commit-error": {
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectExec(deleteQuery).WithArgs(fixedTaskID, fixedOwnerID).WillReturnResult(sqlmock.NewResult(0, 1))
				m.ExpectCommit().WillReturnError(errors.New("commit error"))
			},
			fn:        deleteTask,
			expectErr: true,
		},
		"rollback-error-with-original-error": {
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectExec(deleteQuery).WithArgs(fixedTaskID, fixedOwnerID).WillReturnError(errors.New("delete error"))
				m.ExpectRollback().WillReturnError(errors.New("rollback error"))
			},
			fn:        deleteTask,
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock := newSQLMock(t)
			tt.setupMock(mock)

			err := NewUnitOfWork(db).Execute(context.Background(), tt.fn)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUnitOfWork_TaskAndOutboxShareTransaction(t *testing.T) {
	db, mock := newSQLMock(t)

	task := domain.Task{
		ID:        fixedTaskID,
		OwnerID:   fixedOwnerID,
		Title:     "Plan a wedding",
		Priority:  domain.TaskPriority_MEDIUM,
		Status:    domain.TaskStatus_PENDING,
		CreatedAt: fixedTime,
		UpdatedAt: fixedTime,
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO tasks (id,owner_id,parent_id,title,priority,status,created_at,updated_at) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)").
		WithArgs(task.ID, task.OwnerID, nil, task.Title, "medium", "pending", fixedTime, fixedTime).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(insertOutboxEvent).
		WithArgs(sqlmock.AnyArg(), "Task", fixedTaskID, "Tasks", "TASK.CREATED", sqlmock.AnyArg(), "PENDING", 0, 5, nil, fixedTime).
		WillReturnError(errors.New("outbox error"))
	mock.ExpectRollback()

	err := NewUnitOfWork(db).Execute(context.Background(), func(uow domain.UnitOfWork) error {
		if err := uow.Task().CreateTask(context.Background(), task); err != nil {
			return err
		}
		return uow.Outbox().CreateTaskEvent(context.Background(), domain.TaskEvent{
			Type:      domain.EventType_TASK_CREATED,
			TaskID:    task.ID,
			OwnerID:   task.OwnerID,
			Title:     task.Title,
			CreatedAt: fixedTime,
		})
	})

	assert.ErrorContains(t, err, "outbox error")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnitOfWork_runner(t *testing.T) {
	db, mock := newSQLMock(t)

	assert.Equal(t, db, NewUnitOfWork(db).runner())

	mock.ExpectBegin()
	tx, err := db.Begin()
	require.NoError(t, err)
	assert.Equal(t, tx, (&UnitOfWork{db: db, tx: tx}).runner())

	mock.ExpectRollback()
	_ = tx.Rollback()
}

func TestInitUnitOfWork_Initialize(t *testing.T) {
	db, _ := newSQLMock(t)

	_, err := InitUnitOfWork{DB: db}.Initialize(context.Background())
	require.NoError(t, err)

	uow, err := depend.Resolve[domain.UnitOfWork]()
	assert.NoError(t, err)
	assert.NotNil(t, uow.Task())
	assert.NotNil(t, uow.Outbox())
}
