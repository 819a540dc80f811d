package cart

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"go-restaurant-ordering/models"
)

// Namespace prefixes every persisted cart key. Admin preferences live under
// their own namespace so the two stores never collide.
const Namespace = "restaurant-cart"

// Persister stores and restores cart snapshots by key. Save overwrites the
// whole slot; Load reports found=false for a key that was never written.
type Persister interface {
	Save(ctx context.Context, key string, snap Snapshot) error
	Load(ctx context.Context, key string) (snap Snapshot, found bool, err error)
}

type cartDocument struct {
	Cart_key   string            `bson:"cart_key"`
	Items      []models.CartItem `bson:"items"`
	Is_open    bool              `bson:"is_open"`
	Updated_at time.Time         `bson:"updated_at"`
}

// MongoPersister keeps one snapshot document per cart key.
type MongoPersister struct {
	collection *mongo.Collection
}

func NewMongoPersister(collection *mongo.Collection) *MongoPersister {
	return &MongoPersister{collection: collection}
}

func (p *MongoPersister) Save(ctx context.Context, key string, snap Snapshot) error {
	filter := bson.M{"cart_key": Namespace + ":" + key}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "items", Value: snap.Items},
		{Key: "is_open", Value: snap.Is_open},
		{Key: "updated_at", Value: time.Now()},
	}}}
	_, err := p.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (p *MongoPersister) Load(ctx context.Context, key string) (Snapshot, bool, error) {
	var doc cartDocument
	err := p.collection.FindOne(ctx, bson.M{"cart_key": Namespace + ":" + key}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return Snapshot{}, false, nil
	}
	if err != nil {
		return Snapshot{}, false, err
	}
	return Snapshot{Items: doc.Items, Is_open: doc.Is_open}, true, nil
}

// MemoryPersister is an in-process Persister for tests.
type MemoryPersister struct {
	mu    sync.Mutex
	slots map[string]Snapshot
}

func NewMemoryPersister() *MemoryPersister {
	return &MemoryPersister{slots: make(map[string]Snapshot)}
}

func (p *MemoryPersister) Save(ctx context.Context, key string, snap Snapshot) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.slots[Namespace+":"+key] = Snapshot{
		Items:   copyItems(snap.Items),
		Is_open: snap.Is_open,
	}
	return nil
}

func (p *MemoryPersister) Load(ctx context.Context, key string) (Snapshot, bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	snap, ok := p.slots[Namespace+":"+key]
	if !ok {
		return Snapshot{}, false, nil
	}
	return Snapshot{Items: copyItems(snap.Items), Is_open: snap.Is_open}, true, nil
}
