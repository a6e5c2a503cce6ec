package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type upsertFixture struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func TestUpsertUpdateNeverSetsID(t *testing.T) {
	doc := &upsertFixture{
		ID:        primitive.NewObjectID(),
		Name:      "eagle-patrol",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	update, err := UpsertUpdate(doc)
	require.NoError(t, err)

	set, ok := update["$set"].(bson.M)
	require.True(t, ok)
	assert.NotContains(t, set, "_id")
	assert.Equal(t, "eagle-patrol", set["name"])
	assert.Contains(t, set, "updated_at")
}

func TestUpsertUpdateWritesCreatedAtOnlyOnInsert(t *testing.T) {
	update, err := UpsertUpdate(&upsertFixture{Name: "aurora-crew"})
	require.NoError(t, err)

	set := update["$set"].(bson.M)
	assert.NotContains(t, set, "created_at")

	onInsert, ok := update["$setOnInsert"].(bson.M)
	require.True(t, ok)
	assert.Contains(t, onInsert, "created_at")
}

func TestUpsertUpdateRepeatedCallsCarryNoFreshID(t *testing.T) {
	// Re-running an upsert for the same natural key must produce an update
	// document Mongo will accept against the already-stored row.
	for i := 0; i < 2; i++ {
		update, err := UpsertUpdate(&upsertFixture{Name: "river-bend"})
		require.NoError(t, err)
		set := update["$set"].(bson.M)
		assert.NotContains(t, set, "_id")
	}
}

func TestUpsertUpdateWithoutCreatedAtField(t *testing.T) {
	type activeRow struct {
		ID        primitive.ObjectID `bson:"_id,omitempty"`
		UserID    primitive.ObjectID `bson:"user_id"`
		UpdatedAt time.Time          `bson:"updated_at"`
	}

	update, err := UpsertUpdate(&activeRow{UserID: primitive.NewObjectID()})
	require.NoError(t, err)
	assert.NotContains(t, update, "$setOnInsert")
	assert.NotContains(t, update["$set"].(bson.M), "_id")
}
