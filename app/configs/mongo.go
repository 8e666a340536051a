package configs

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// OpenMongo connects to the document database with a short retry loop so the
// app survives the database container coming up after it.
func OpenMongo(env ENV) (*mongo.Database, error) {
	maxRetries := 10
	retryDelay := 5 * time.Second

	for i := 0; i < maxRetries; i++ {
		log.Printf("Attempting to connect to MongoDB (Attempt %d/%d)", i+1, maxRetries)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(env.MongoURI))
		if err == nil {
			err = client.Ping(ctx, readpref.Primary())
			if err == nil {
				cancel()
				log.Println("✅ MongoDB connection successful!")
				return client.Database(env.MongoDB), nil
			}
			_ = client.Disconnect(ctx)
		}
		cancel()

		log.Printf("❌ Failed to connect to MongoDB: %v. Retrying in %v...", err, retryDelay)
		time.Sleep(retryDelay)
	}

	return nil, fmt.Errorf("failed to connect to MongoDB at %s after %d retries", env.MongoURI, maxRetries)
}
