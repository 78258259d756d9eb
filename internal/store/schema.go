package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"

	entschema "github.com/abhisek/geomotion/ent/schema"
)

const (
	tableLLMRequests = "llm_request_events"
	tableAnswers     = "answer_events"
	tableSessions    = "session_events"
)

// eventSchemas maps each event table to its ent schema.
var eventSchemas = []struct {
	table  string
	schema ent.Interface
}{
	{tableLLMRequests, entschema.LLMRequestEvent{}},
	{tableAnswers, entschema.AnswerEvent{}},
	{tableSessions, entschema.SessionEvent{}},
}

// migrate creates the event tables from their ent schemas.
func migrate(ctx context.Context, db *sql.DB) error {
	tables := make([]*schema.Table, 0, len(eventSchemas))
	for _, s := range eventSchemas {
		t, err := tableFor(s.table, s.schema)
		if err != nil {
			return err
		}
		tables = append(tables, t)
	}

	m, err := schema.NewMigrate(entsql.OpenDB(dialect.SQLite, db))
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	if err := m.Create(ctx, tables...); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}
	return nil
}

// tableFor lays out an ent schema as a migration table: an auto-increment
// id, the mixin fields, then the schema's own fields, with one index per
// declared index.
func tableFor(name string, s ent.Interface) (*schema.Table, error) {
	id := &schema.Column{Name: "id", Type: field.TypeInt, Increment: true}
	t := schema.NewTable(name).AddPrimary(id)

	var (
		fields  []ent.Field
		indexes []ent.Index
	)
	for _, m := range s.Mixin() {
		fields = append(fields, m.Fields()...)
		indexes = append(indexes, m.Indexes()...)
	}
	fields = append(fields, s.Fields()...)
	indexes = append(indexes, s.Indexes()...)

	for _, f := range fields {
		d := f.Descriptor()
		if d.Err != nil {
			return nil, fmt.Errorf("%s.%s: %w", name, d.Name, d.Err)
		}
		t.AddColumn(&schema.Column{
			Name:     d.Name,
			Type:     d.Info.Type,
			Size:     int64(d.Size),
			Unique:   d.Unique,
			Nullable: d.Optional || d.Nillable,
			Default:  columnDefault(d.Default),
			Comment:  d.Comment,
		})
	}

	for _, idx := range indexes {
		d := idx.Descriptor()
		cols := make([]*schema.Column, 0, len(d.Fields))
		for _, f := range d.Fields {
			c, ok := t.Column(f)
			if !ok {
				return nil, fmt.Errorf("%s: index on unknown column %q", name, f)
			}
			cols = append(cols, c)
		}
		t.Indexes = append(t.Indexes, &schema.Index{
			Name:    name + "_" + strings.Join(d.Fields, "_"),
			Unique:  d.Unique,
			Columns: cols,
		})
	}
	return t, nil
}

// columnDefault keeps literal defaults. Function defaults such as
// time.Now are applied by the writer, not the database.
func columnDefault(v any) any {
	switch v.(type) {
	case string, bool, int, int64, float64:
		return v
	}
	return nil
}
