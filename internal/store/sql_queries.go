package store

// User queries are written once with $N placeholders, which both supported
// engines accept. Secret queries are built with squirrel in
// [secretRepository] because their placeholder format differs per engine.
const (
	createUser = `INSERT INTO users (username, password_hash)
    VALUES ($1, $2)
    RETURNING user_id, username, password_hash, created_at;`

	findUserByUsername = `SELECT user_id, username, password_hash, created_at
    FROM users
    WHERE username = $1;`
)
