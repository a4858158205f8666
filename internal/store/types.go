package store

import (
	"codeberg.org/resumatch/server/internal/matcher"
	"github.com/jackc/pgx/v5"
	"github.com/pgvector/pgvector-go"
)

// converts a stored document into the ranking core's shape
func (d Document) AsMatcherDocument() matcher.Document {
	return matcher.Document{
		ID:        d.ID,
		Filename:  d.Filename,
		Text:      d.Content,
		Embedding: d.Vector,
	}
}

// converts a fetched corpus for ranking
func AsCorpus(docs []Document) []matcher.Document {
	corpus := make([]matcher.Document, len(docs))

	for i, doc := range docs {
		corpus[i] = doc.AsMatcherDocument()
	}

	return corpus
}

// maps a nil vector to SQL NULL
func vectorParam(vec []float32) any {
	if vec == nil {
		return nil
	}

	return pgvector.NewVector(vec)
}

func scanDocuments(rows pgx.Rows) ([]Document, error) {
	var docs []Document

	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}

		docs = append(docs, *doc)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return docs, nil
}

func scanDocument(row pgx.Row) (*Document, error) {
	var doc Document
	var emb *pgvector.Vector

	err := row.Scan(
		&doc.ID,
		&doc.OwnerID,
		&doc.Filename,
		&doc.Kind,
		&doc.Content,
		&emb,
	)

	if err != nil {
		return nil, err
	}

	if emb != nil {
		doc.Vector = emb.Slice()
	}

	return &doc, nil
}
