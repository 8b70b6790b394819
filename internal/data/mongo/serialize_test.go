package mongo

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestToPublicNil(t *testing.T) {
	if got := ToPublic(nil); got != nil {
		t.Fatalf("ToPublic(nil): want nil, got %v", got)
	}
}

func TestToPublicConvertsIDAndTimes(t *testing.T) {
	oid := primitive.NewObjectID()
	created := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

	got := ToPublic(bson.M{
		"_id":        oid,
		"email":      "a@b.com",
		"created_at": primitive.NewDateTimeFromTime(created),
		"updated_at": created,
		"age":        31,
	})

	if got["id"] != oid.Hex() {
		t.Fatalf("id: want %q, got %v", oid.Hex(), got["id"])
	}
	if _, stillThere := got["_id"]; stillThere {
		t.Fatal("_id should not survive serialization")
	}
	if got["created_at"] != "2024-03-01T12:30:00Z" {
		t.Fatalf("created_at: got %v", got["created_at"])
	}
	if got["updated_at"] != "2024-03-01T12:30:00Z" {
		t.Fatalf("updated_at: got %v", got["updated_at"])
	}
	if got["email"] != "a@b.com" || got["age"] != 31 {
		t.Fatalf("passthrough fields changed: %v", got)
	}
}

func TestToPublicIdempotent(t *testing.T) {
	oid := primitive.NewObjectID()
	public := ToPublic(bson.M{
		"_id":        oid,
		"created_at": primitive.NewDateTimeFromTime(time.Now()),
		"title":      "x-ray",
	})

	again := ToPublic(public)
	if len(again) != len(public) {
		t.Fatalf("idempotence: field count changed, %v vs %v", again, public)
	}
	for k, v := range public {
		if again[k] != v {
			t.Fatalf("idempotence: field %q changed from %v to %v", k, v, again[k])
		}
	}
}

func TestInsertUnavailableWithoutConnection(t *testing.T) {
	var s *Service
	if _, err := s.Insert(context.Background(), "userprofile", bson.M{}); err == nil {
		t.Fatal("nil service should refuse inserts")
	}
}
