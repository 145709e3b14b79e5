package db

import (
	"context"
	"fmt"
	"time"

	"github.com/stationops/fuel-station/internal/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStationCollection implements StationCollection for MongoDB
type MongoStationCollection struct {
	Collection *mongo.Collection
}

// InsertStation inserts a station registry record
func (c *MongoStationCollection) InsertStation(ctx context.Context, info models.StationInfo) error {
	if c.Collection == nil {
		return fmt.Errorf("mongo collection is nil")
	}
	info.CreatedAt = time.Now()
	_, err := c.Collection.InsertOne(ctx, info)
	return err
}

// FindStations queries station registry records
func (c *MongoStationCollection) FindStations(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (StationCursor, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	cursor, err := c.Collection.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	return &mongoStationCursor{cursor: cursor}, nil
}

type mongoStationCursor struct {
	cursor *mongo.Cursor
}

func (m *mongoStationCursor) All(ctx context.Context, out interface{}) error {
	return m.cursor.All(ctx, out)
}

func (m *mongoStationCursor) Close(ctx context.Context) error {
	return m.cursor.Close(ctx)
}
