package querybuilder

import (
	"database/sql"
	"testing"
	"time"
)

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("admin_id", "total_emails").
		From("admin_statistics").
		Where(Eq("admin_id", "adm-1")).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT admin_id, total_emails FROM admin_statistics WHERE admin_id = ?"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "adm-1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_RequiresTable(t *testing.T) {
	if _, _, err := Select("id").ToSQL(); err == nil {
		t.Fatalf("expected error without table")
	}
}

func TestUpdateBuilder(t *testing.T) {
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	query, args, err := Update("admins").
		Set("name", "Asha").
		Set("updated_at", now).
		Where(Eq("id", "adm-1"), Eq("status", "active")).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE admins SET name = ?, updated_at = ? WHERE id = ? AND status = ?"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 4 || args[0] != "Asha" || args[1] != now || args[2] != "adm-1" || args[3] != "active" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilder_RequiresWhere(t *testing.T) {
	if _, _, err := Update("admins").Set("name", "Asha").ToSQL(); err == nil {
		t.Fatalf("expected error for update without where")
	}
}

func TestUpsertModel(t *testing.T) {
	type row struct {
		ID        string         `db:"id"`
		Name      string         `db:"name"`
		AvatarURL sql.NullString `db:"avatar_url"`
		ignored   string
		Skip      string `db:"-"`
	}

	query, args, err := UpsertModel("admins", &row{ID: "1", Name: "Asha"}, "id")
	if err != nil {
		t.Fatalf("build upsert: %v", err)
	}

	wantQuery := "INSERT INTO admins (id, name, avatar_url) VALUES (?, ?, ?) ON CONFLICT (id) DO UPDATE SET name = excluded.name, avatar_url = excluded.avatar_url"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[0] != "1" || args[1] != "Asha" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpsertModel_KeyOnly(t *testing.T) {
	type row struct {
		ID string `db:"id"`
	}

	query, _, err := UpsertModel("admins", row{ID: "1"}, "id")
	if err != nil {
		t.Fatalf("build upsert: %v", err)
	}
	if query != "INSERT INTO admins (id) VALUES (?) ON CONFLICT (id) DO NOTHING" {
		t.Fatalf("unexpected query: %s", query)
	}
}

func TestInsertModel_RejectsNonStruct(t *testing.T) {
	if _, _, err := InsertModel("admins", 42, ""); err == nil {
		t.Fatalf("expected error for non-struct model")
	}
	var missing *struct{}
	if _, _, err := InsertModel("admins", missing, ""); err == nil {
		t.Fatalf("expected error for nil model")
	}
}
