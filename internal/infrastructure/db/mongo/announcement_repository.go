package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mitcampus/campus-companion/internal/core/domain"
)

const (
	collectionAnnouncements = "announcements"
	collectionCounters      = "counters"
	announcementSequence    = "announcement_id"
)

type AnnouncementRepository struct {
	col      *mongo.Collection
	counters *mongo.Collection
}

func NewAnnouncementRepository(db *mongo.Database) *AnnouncementRepository {
	return &AnnouncementRepository{
		col:      db.Collection(collectionAnnouncements),
		counters: db.Collection(collectionCounters),
	}
}

// List returns every announcement, most recently published first.
func (r *AnnouncementRepository) List(ctx context.Context) ([]domain.Announcement, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "published_at", Value: -1}, {Key: "_id", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find announcements: %w", err)
	}
	defer cur.Close(ctx)

	items := []domain.Announcement{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode announcements: %w", err)
	}
	return items, nil
}

// Create inserts a, drawing the next numeric ID from the counters collection
// when a.ID is unset. Seeded IDs advance the counter so later inserts never collide.
func (r *AnnouncementRepository) Create(ctx context.Context, a *domain.Announcement) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if a.ID == 0 {
		id, err := r.nextID(ctx)
		if err != nil {
			return err
		}
		a.ID = id
	} else if err := r.advanceTo(ctx, a.ID); err != nil {
		return err
	}

	if _, err := r.col.InsertOne(ctx, a); err != nil {
		return fmt.Errorf("insert announcement: %w", err)
	}
	return nil
}

func (r *AnnouncementRepository) nextID(ctx context.Context) (int, error) {
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var doc struct {
		Seq int `bson:"seq"`
	}
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": announcementSequence},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&doc)
	if err != nil {
		return 0, fmt.Errorf("next announcement id: %w", err)
	}
	return doc.Seq, nil
}

func (r *AnnouncementRepository) advanceTo(ctx context.Context, id int) error {
	_, err := r.counters.UpdateOne(ctx,
		bson.M{"_id": announcementSequence},
		bson.M{"$max": bson.M{"seq": id}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("advance announcement id: %w", err)
	}
	return nil
}

func (r *AnnouncementRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.col.CountDocuments(ctx, bson.M{})
}
