package database

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type tracedModel struct {
	Id   int64
	Name string
}

func newDryRunDB(t *testing.T) (*gorm.DB, *tracetest.SpanRecorder) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	// DryRun 只生成 SQL，写操作默认开启的事务也要关掉，否则会去连数据库
	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:                       "root:root@tcp(localhost:13316)/chatterdoc",
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	err = db.Use(NewGormTracingPlugin(WithTracerProvider(tp)))
	require.NoError(t, err)
	return db, recorder
}

func TestGormTracingPlugin(t *testing.T) {
	testCases := []struct {
		name      string
		exec      func(db *gorm.DB) error
		wantName  string
		wantOp    string
		wantError bool
	}{
		{
			name: "查询",
			exec: func(db *gorm.DB) error {
				var res []tracedModel
				return db.WithContext(context.Background()).Where("id = ?", 1).Find(&res).Error
			},
			wantName: "traced_models SELECT",
			wantOp:   "SELECT",
		},
		{
			name: "插入",
			exec: func(db *gorm.DB) error {
				return db.Create(&tracedModel{Id: 1, Name: "a"}).Error
			},
			wantName: "traced_models INSERT",
			wantOp:   "INSERT",
		},
		{
			name: "更新",
			exec: func(db *gorm.DB) error {
				return db.Model(&tracedModel{}).Where("id = ?", 1).Update("name", "b").Error
			},
			wantName: "traced_models UPDATE",
			wantOp:   "UPDATE",
		},
		{
			name: "删除",
			exec: func(db *gorm.DB) error {
				return db.Where("id = ?", 1).Delete(&tracedModel{}).Error
			},
			wantName: "traced_models DELETE",
			wantOp:   "DELETE",
		},
		{
			name: "出错",
			exec: func(db *gorm.DB) error {
				var res []tracedModel
				db = db.Where("id = ?", 1)
				_ = db.AddError(errors.New("mock db error"))
				return db.Find(&res).Error
			},
			wantName:  "traced_models SELECT",
			wantOp:    "SELECT",
			wantError: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, recorder := newDryRunDB(t)
			err := tc.exec(db)
			assert.Equal(t, tc.wantError, err != nil)

			spans := recorder.Ended()
			require.Len(t, spans, 1)
			span := spans[0]
			assert.Equal(t, tc.wantName, span.Name())
			assert.Contains(t, span.Attributes(), attribute.String("db.operation", tc.wantOp))
			if tc.wantError {
				assert.Equal(t, codes.Error, span.Status().Code)
				return
			}
			assert.Equal(t, codes.Ok, span.Status().Code)
		})
	}
}
