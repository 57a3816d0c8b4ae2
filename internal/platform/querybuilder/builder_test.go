package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "name").
		From("players").
		Where(Eq("name", "Olena")).
		OrderBy("id").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, name FROM players WHERE name = ? ORDER BY id LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "Olena" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilderExprAndGroupBy(t *testing.T) {
	query, args, err := Select("location_id", "COUNT(1) AS cnt").
		From("matches").
		Where(Expr("started_at BETWEEN ? AND ?", int64(100), int64(200))).
		GroupBy("location_id").
		OrderBy("cnt DESC").
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT location_id, COUNT(1) AS cnt FROM matches" +
		" WHERE started_at BETWEEN ? AND ? GROUP BY location_id ORDER BY cnt DESC"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != int64(100) || args[1] != int64(200) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("locations").
		Columns("id", "name").
		Values(int64(1), "Garage").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO locations (id, name) VALUES (?, ?)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != int64(1) || args[1] != "Garage" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilderRejectsRaggedRow(t *testing.T) {
	_, _, err := InsertInto("locations").
		Columns("id", "name").
		Values(int64(1)).
		ToSQL()
	if err == nil {
		t.Fatal("expected error for row/column mismatch")
	}
}
