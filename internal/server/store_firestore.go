package server

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const firestoreCollection = "tournaments"

// FirestoreStore keeps one document per tournament. The record travels as a
// single JSON blob so every backend shares one codec; a few fields are
// lifted next to it for ordering and dashboards.
type FirestoreStore struct {
	client *firestore.Client
}

type firestoreDoc struct {
	Data      string `firestore:"data"`
	Name      string `firestore:"name"`
	Started   bool   `firestore:"started"`
	UpdatedAt string `firestore:"updatedAt"`
	CreatedAt string `firestore:"createdAt"`
}

func NewFirestoreStore(ctx context.Context, projectID, credentialsFile string) (*FirestoreStore, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating firestore client: %w", err)
	}
	return &FirestoreStore{client: client}, nil
}

func (s *FirestoreStore) Close() error { return s.client.Close() }

func (s *FirestoreStore) Load(ctx context.Context, id string) (TournamentRecord, error) {
	snap, err := s.client.Collection(firestoreCollection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return TournamentRecord{}, ErrNotFound
	}
	if err != nil {
		return TournamentRecord{}, fmt.Errorf("loading tournament %q: %w", id, err)
	}

	var doc firestoreDoc
	if err := snap.DataTo(&doc); err != nil {
		return TournamentRecord{}, fmt.Errorf("decoding tournament %q: %w", id, err)
	}
	var rec TournamentRecord
	if err := json.Unmarshal([]byte(doc.Data), &rec); err != nil {
		return TournamentRecord{}, fmt.Errorf("decoding tournament %q: %w", id, err)
	}
	return rec, nil
}

func (s *FirestoreStore) Save(ctx context.Context, rec TournamentRecord) error {
	stamp(&rec)
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encoding tournament %q: %w", rec.ID, err)
	}
	_, err = s.client.Collection(firestoreCollection).Doc(rec.ID).Set(ctx, firestoreDoc{
		Data:      string(data),
		Name:      rec.Name,
		Started:   rec.State.Started(),
		UpdatedAt: rec.UpdatedAt,
		CreatedAt: rec.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("saving tournament %q: %w", rec.ID, err)
	}
	return nil
}

func (s *FirestoreStore) Delete(ctx context.Context, id string) error {
	_, err := s.client.Collection(firestoreCollection).Doc(id).Delete(ctx)
	if err != nil {
		return fmt.Errorf("deleting tournament %q: %w", id, err)
	}
	return nil
}

func (s *FirestoreStore) List(ctx context.Context) ([]TournamentSummary, error) {
	iter := s.client.Collection(firestoreCollection).
		OrderBy("updatedAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var out []TournamentSummary
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("listing tournaments: %w", err)
		}
		var doc firestoreDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("decoding tournament %q: %w", snap.Ref.ID, err)
		}
		var rec TournamentRecord
		if err := json.Unmarshal([]byte(doc.Data), &rec); err != nil {
			return nil, fmt.Errorf("decoding tournament %q: %w", snap.Ref.ID, err)
		}
		out = append(out, rec.Summary())
	}
	return out, nil
}
