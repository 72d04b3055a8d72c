package mongo

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/legalapp/case-management/internal/core/ports"
)

func TestClientFilterQuery(t *testing.T) {
	q := clientFilterQuery(ports.ClientFilter{ActiveOnly: true, Email: "a@x.com", ExcludeID: 3})

	if q["is_active"] != true {
		t.Fatalf("expected is_active filter, got %v", q)
	}
	if q["email"] != "a@x.com" {
		t.Fatalf("expected email filter, got %v", q)
	}
	ne, ok := q["_id"].(bson.M)
	if !ok || ne["$ne"] != int64(3) {
		t.Fatalf("expected _id $ne 3, got %v", q["_id"])
	}
	if _, ok := q["$or"]; ok {
		t.Fatalf("unexpected search clause")
	}
}

func TestClientFilterQuery_SearchIsEscaped(t *testing.T) {
	q := clientFilterQuery(ports.ClientFilter{Search: "Martin & Co."})

	or, ok := q["$or"].(bson.A)
	if !ok || len(or) != 3 {
		t.Fatalf("expected three-way $or, got %v", q)
	}
	name := or[0].(bson.M)["name"].(bson.M)
	if name["$regex"] != `Martin & Co\.` {
		t.Fatalf("expected escaped pattern, got %v", name["$regex"])
	}
}

func TestClientFilterQuery_Empty(t *testing.T) {
	if q := clientFilterQuery(ports.ClientFilter{}); len(q) != 0 {
		t.Fatalf("expected empty query, got %v", q)
	}
}
