package database

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceAccount holds the credential fields needed to authenticate the
// Firestore client when no credentials file is configured.
type ServiceAccount struct {
	Type        string `json:"type"`
	ProjectID   string `json:"project_id"`
	ClientEmail string `json:"client_email"`
	PrivateKey  string `json:"private_key"`
}

// CredentialsJSON renders the service account as the JSON document the
// Google SDK expects. Escaped newlines in the private key are unescaped,
// since the key usually arrives through an environment variable.
func (sa ServiceAccount) CredentialsJSON() ([]byte, error) {
	sa.Type = "service_account"
	sa.PrivateKey = strings.ReplaceAll(sa.PrivateKey, `\n`, "\n")
	return json.Marshal(sa)
}

// Firestore implements Store over a Cloud Firestore database.
type Firestore struct {
	client *firestore.Client
}

// NewFirestore connects to Firestore for the given project. The process
// holds exactly one client; callers construct it at bootstrap and inject
// it into the repositories.
func NewFirestore(ctx context.Context, projectID string, opts ...option.ClientOption) (*Firestore, error) {
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to firestore: %w", err)
	}
	return &Firestore{client: client}, nil
}

// Close releases the underlying client connection.
func (f *Firestore) Close() error {
	return f.client.Close()
}

func (f *Firestore) GetByID(ctx context.Context, collection, id string) (Document, error) {
	snap, err := f.client.Collection(collection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return Document{}, ErrNotFound
	}
	if err != nil {
		return Document{}, err
	}
	return Document{ID: snap.Ref.ID, Fields: snap.Data()}, nil
}

func (f *Firestore) QueryEquals(ctx context.Context, collection, field string, value any) ([]Document, error) {
	iter := f.client.Collection(collection).Where(field, "==", value).Documents(ctx)
	return drain(iter)
}

func (f *Firestore) QueryAll(ctx context.Context, collection string) ([]Document, error) {
	return drain(f.client.Collection(collection).Documents(ctx))
}

func (f *Firestore) Insert(ctx context.Context, collection string, fields map[string]any) (string, error) {
	ref, _, err := f.client.Collection(collection).Add(ctx, fields)
	if err != nil {
		return "", err
	}
	return ref.ID, nil
}

// UpdateMerge overwrites exactly the given fields, leaving the rest of
// the document untouched. Concurrent merges race at field granularity,
// last writer wins. Merging onto an absent id is ErrNotFound, never an
// implicit create: a patch can't mint a document that skipped creation
// (and its uid stamp).
func (f *Firestore) UpdateMerge(ctx context.Context, collection, id string, partial map[string]any) error {
	updates := make([]firestore.Update, 0, len(partial))
	for field, value := range partial {
		updates = append(updates, firestore.Update{Path: field, Value: value})
	}
	_, err := f.client.Collection(collection).Doc(id).Update(ctx, updates)
	if status.Code(err) == codes.NotFound {
		return ErrNotFound
	}
	return err
}

func (f *Firestore) DeleteByID(ctx context.Context, collection, id string) error {
	_, err := f.client.Collection(collection).Doc(id).Delete(ctx)
	return err
}

func drain(iter *firestore.DocumentIterator) ([]Document, error) {
	defer iter.Stop()
	var docs []Document
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			return docs, nil
		}
		if err != nil {
			return nil, err
		}
		docs = append(docs, Document{ID: snap.Ref.ID, Fields: snap.Data()})
	}
}
