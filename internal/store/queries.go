package store

const (
	insertDocumentQuery = `
		INSERT INTO documents (owner_id, filename, kind, content, embedding)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id::text
	`

	fetchDocumentsQuery = `
		SELECT id::text, owner_id, filename, kind, content, embedding
		FROM documents
		WHERE owner_id = $1
		ORDER BY created_at ASC
	`

	fetchAllDocumentsQuery = `
		SELECT id::text, owner_id, filename, kind, content, embedding
		FROM documents
		ORDER BY created_at ASC
	`

	getDocumentQuery = `
		SELECT id::text, owner_id, filename, kind, content, embedding
		FROM documents
		WHERE id = $1 AND owner_id = $2
	`

	updateEmbeddingQuery = `
		UPDATE documents
		SET embedding = $2
		WHERE id = $1
	`

	deleteDocumentQuery = `
		DELETE FROM documents
		WHERE id = $1 AND owner_id = $2
	`

	countDocumentsQuery = `
		SELECT
			COUNT(*),
			COUNT(embedding)
		FROM documents
		WHERE ($1 = '' OR owner_id = $1)
	`
)
