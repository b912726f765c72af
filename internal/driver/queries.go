package driver

// IndexQueries are run once at start-up.
var IndexQueries = []string{
	"CREATE INDEX ON :ImageDocument(id);",
	"CREATE INDEX ON :ImageDocument(user_id);",
}

const (
	SaveImageDocumentQuery = `
		MERGE (d:ImageDocument {user_id: $user_id, id: $id})
		SET d.uri = $uri,
			d.updated_at = $updated_at,
			d.payload = $payload
		RETURN d.id AS id
	`

	GetImageDocumentQuery = `
		MATCH (d:ImageDocument {user_id: $user_id, id: $id})
		RETURN d.id AS id, d.user_id AS user_id, d.uri AS uri, d.updated_at AS updated_at, d.payload AS payload
	`

	ListImageDocumentsQuery = `
		MATCH (d:ImageDocument {user_id: $user_id})
		RETURN d.id AS id, d.user_id AS user_id, d.uri AS uri, d.updated_at AS updated_at, d.payload AS payload
		ORDER BY d.updated_at DESC
	`
)
