package repository

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"skytrak-service/internal/domain/entity"
	"skytrak-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoFlightRepository implements FlightRepository
type MongoFlightRepository struct {
	collection *mongo.Collection
}

// NewMongoFlightRepository creates a new flight repository
func NewMongoFlightRepository(db *mongo.Database) repository.FlightRepository {
	collection := db.Collection("voos")

	ctx := context.Background()
	collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.M{"numero_voo": 1},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.M{"horario_previsto": 1},
		},
	})

	return &MongoFlightRepository{
		collection: collection,
	}
}

// List returns every stored flight ordered by scheduled time
func (r *MongoFlightRepository) List(ctx context.Context) ([]entity.Flight, error) {
	opts := options.Find().SetSort(bson.D{{Key: "horario_previsto", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	flights := []entity.Flight{}
	if err := cursor.All(ctx, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

// FindByNumber finds a flight by number, ignoring case
func (r *MongoFlightRepository) FindByNumber(ctx context.Context, numeroVoo string) (*entity.Flight, error) {
	numero := strings.TrimSpace(numeroVoo)
	if numero == "" {
		return nil, entity.ErrNotFound
	}

	filter := bson.M{"numero_voo": primitive.Regex{
		Pattern: "^" + regexp.QuoteMeta(numero) + "$",
		Options: "i",
	}}

	var flight entity.Flight
	err := r.collection.FindOne(ctx, filter).Decode(&flight)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return &flight, nil
}

// Upsert creates or updates a flight keyed by its upper-cased number
func (r *MongoFlightRepository) Upsert(ctx context.Context, flight *entity.Flight) error {
	key := flight.Key()
	if key == "" {
		return errors.New("numero_voo is required")
	}
	flight.NumeroVoo = key
	flight.UpdatedAt = time.Now()

	updateDoc := bson.M{
		"numero_voo":       flight.NumeroVoo,
		"companhia":        flight.Companhia,
		"horario_previsto": flight.HorarioPrevisto,
		"status":           flight.Status,
		"preco_medio":      float64(flight.PrecoMedio),
		"origem_cidade":    flight.OrigemCidade,
		"origem_estado":    flight.OrigemEstado,
		"destino_cidade":   flight.DestinoCidade,
		"destino_estado":   flight.DestinoEstado,
		"updatedAt":        flight.UpdatedAt,
	}

	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"numero_voo": key},
		bson.M{"$set": updateDoc},
		options.Update().SetUpsert(true),
	)
	return err
}
