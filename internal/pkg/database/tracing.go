package database

import (
	"errors"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

const (
	instrumentationName = "github.com/ecodeclub/chatterdoc/internal/pkg/database"
	spanKey             = "tracing:span"
)

// GormTracingPlugin 给每一次数据库操作创建一个 span
type GormTracingPlugin struct {
	tracer trace.Tracer
}

type Option func(p *GormTracingPlugin)

// WithTracerProvider 不传的时候使用全局的 TracerProvider
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(p *GormTracingPlugin) {
		p.tracer = tp.Tracer(instrumentationName)
	}
}

func NewGormTracingPlugin(opts ...Option) *GormTracingPlugin {
	p := &GormTracingPlugin{
		tracer: otel.GetTracerProvider().Tracer(instrumentationName),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *GormTracingPlugin) Name() string {
	return "GormTracingPlugin"
}

func (p *GormTracingPlugin) Initialize(db *gorm.DB) error {
	cb := db.Callback()
	ops := []struct {
		operation string
		callback  string
	}{
		{operation: "SELECT", callback: "gorm:query"},
		{operation: "INSERT", callback: "gorm:create"},
		{operation: "UPDATE", callback: "gorm:update"},
		{operation: "DELETE", callback: "gorm:delete"},
		{operation: "RAW", callback: "gorm:raw"},
	}
	for _, op := range ops {
		proc := cb.Query()
		switch op.callback {
		case "gorm:create":
			proc = cb.Create()
		case "gorm:update":
			proc = cb.Update()
		case "gorm:delete":
			proc = cb.Delete()
		case "gorm:raw":
			proc = cb.Raw()
		}
		name := strings.ToLower(op.operation)
		err := proc.Before(op.callback).Register("tracing:before_"+name, p.before(op.operation))
		if err != nil {
			return err
		}
		err = proc.After(op.callback).Register("tracing:after_"+name, p.after(op.operation))
		if err != nil {
			return err
		}
	}
	return nil
}

func (p *GormTracingPlugin) before(operation string) func(db *gorm.DB) {
	return func(db *gorm.DB) {
		spanName := "SQL " + operation
		if db.Statement.Table != "" {
			spanName = db.Statement.Table + " " + operation
		}
		ctx, span := p.tracer.Start(db.Statement.Context, spanName,
			trace.WithSpanKind(trace.SpanKindClient))
		db.Statement.Context = ctx
		db.InstanceSet(spanKey, span)
	}
}

func (p *GormTracingPlugin) after(operation string) func(db *gorm.DB) {
	return func(db *gorm.DB) {
		val, ok := db.InstanceGet(spanKey)
		if !ok {
			return
		}
		span, ok := val.(trace.Span)
		if !ok {
			return
		}
		defer span.End()
		setSpanAttributes(span, db, operation)
		// 查不到数据是正常的业务结果
		if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
			span.RecordError(db.Error)
			span.SetStatus(codes.Error, db.Error.Error())
			return
		}
		span.SetStatus(codes.Ok, "")
	}
}

func setSpanAttributes(span trace.Span, db *gorm.DB, operation string) {
	attrs := []attribute.KeyValue{
		attribute.String("db.system", db.Dialector.Name()),
		attribute.String("db.operation", operation),
		attribute.Int64("db.rows_affected", db.Statement.RowsAffected),
	}
	if db.Statement.Table != "" {
		attrs = append(attrs, attribute.String("db.table", db.Statement.Table))
	}
	if sql := db.Statement.SQL.String(); sql != "" {
		attrs = append(attrs, attribute.String("db.statement", sql))
	}
	span.SetAttributes(attrs...)
}
