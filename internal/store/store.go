package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// document kinds
const (
	KindResume = "resume"
	KindJob    = "job"
)

// Document is a stored row. Embedding is nil when generation failed or
// has not run; the scoring core only ever sees a typed vector or nil,
// never a raw storage representation.
type Document struct {
	ID       string
	OwnerID  string
	Filename string
	Kind     string
	Content  string
	Vector   []float32
}

// Store persists documents and their embeddings in Postgres, with the
// embedding held in a pgvector column.
type Store struct {
	pool    *pgxpool.Pool
	ownPool bool
}

func NewStore(ctx context.Context, connString string) (*Store, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool, ownPool: true}, nil
}

// wraps an existing pool without taking ownership of it
func NewStoreFromPool(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) Close() {
	if s.ownPool {
		s.pool.Close()
	}
}

// inserts a document, optionally with an embedding, and returns its id
func (s *Store) InsertDocument(ctx context.Context, doc Document) (string, error) {
	var id string

	err := s.pool.QueryRow(ctx, insertDocumentQuery,
		doc.OwnerID,
		doc.Filename,
		doc.Kind,
		doc.Content,
		vectorParam(doc.Vector),
	).Scan(&id)

	if err != nil {
		return "", fmt.Errorf("failed to insert document: %w", err)
	}

	return id, nil
}

// returns all documents for an owner, oldest first
func (s *Store) FetchDocuments(ctx context.Context, ownerID string) ([]Document, error) {
	rows, err := s.pool.Query(ctx, fetchDocumentsQuery, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch documents: %w", err)
	}
	defer rows.Close()

	return scanDocuments(rows)
}

// returns every stored document, oldest first
func (s *Store) FetchAllDocuments(ctx context.Context) ([]Document, error) {
	rows, err := s.pool.Query(ctx, fetchAllDocumentsQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch documents: %w", err)
	}
	defer rows.Close()

	return scanDocuments(rows)
}

// returns one document scoped to its owner
func (s *Store) GetDocument(ctx context.Context, id, ownerID string) (*Document, error) {
	row := s.pool.QueryRow(ctx, getDocumentQuery, id, ownerID)

	doc, err := scanDocument(row)
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	return doc, nil
}

// writes a new embedding for the document; a nil vector clears it,
// putting the document back into the "no embedding" state
func (s *Store) UpdateEmbedding(ctx context.Context, id string, vec []float32) error {
	_, err := s.pool.Exec(ctx, updateEmbeddingQuery, id, vectorParam(vec))
	if err != nil {
		return fmt.Errorf("failed to update embedding: %w", err)
	}

	return nil
}

// removes a document scoped to its owner
func (s *Store) DeleteDocument(ctx context.Context, id, ownerID string) error {
	_, err := s.pool.Exec(ctx, deleteDocumentQuery, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	return nil
}

// returns total and embedded document counts, optionally per owner
func (s *Store) CountDocuments(ctx context.Context, ownerID string) (total, embedded int, err error) {
	err = s.pool.QueryRow(ctx, countDocumentsQuery, ownerID).Scan(&total, &embedded)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count documents: %w", err)
	}

	return total, embedded, nil
}
