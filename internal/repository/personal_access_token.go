package repository

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"loanexport/internal/config/connections/postgres"
)

// PersonalAccessToken mirrors the admin console's Sanctum token table.
// Tokens arrive as "id|plaintext" or bare plaintext; the stored value
// is the sha256 hex of the plaintext part.
type PersonalAccessToken struct {
	ID        int64
	TokenHash string
	UserID    int64
	Abilities string
	ExpiresAt *time.Time
}

const userTokenableType = "App\\Infrastructure\\Persistence\\Models\\User"

type PersonalAccessTokenRepository struct {
	pg *postgres.Postgres
}

func NewPersonalAccessTokenRepository(pg *postgres.Postgres) *PersonalAccessTokenRepository {
	return &PersonalAccessTokenRepository{pg: pg}
}

func (r *PersonalAccessTokenRepository) FindTokenByPlainToken(ctx context.Context, plainToken string) (*PersonalAccessToken, error) {
	plainToken = strings.TrimSpace(plainToken)
	if plainToken == "" {
		return nil, errors.New("empty token")
	}

	var (
		tokenID   *int64
		tokenPart string
	)

	if idx := strings.Index(plainToken, "|"); idx > 0 {
		if id, err := strconv.ParseInt(plainToken[:idx], 10, 64); err == nil {
			tokenID = &id
		}
		tokenPart = plainToken[idx+1:]
	} else {
		tokenPart = plainToken
	}

	sum := sha256.Sum256([]byte(tokenPart))
	hashStr := fmt.Sprintf("%x", sum)

	var pat PersonalAccessToken

	if tokenID != nil {
		query := `
            SELECT id, token, tokenable_id, abilities, expires_at
            FROM personal_access_tokens
            WHERE id = $1
              AND tokenable_type = $2
              AND (expires_at IS NULL OR expires_at > $3)
        `

		err := r.pg.Pool.QueryRow(ctx, query, *tokenID, userTokenableType, time.Now()).Scan(
			&pat.ID,
			&pat.TokenHash,
			&pat.UserID,
			&pat.Abilities,
			&pat.ExpiresAt,
		)
		if err == nil && (pat.TokenHash == hashStr || pat.TokenHash == tokenPart) {
			return &pat, nil
		}
	}

	// fallback by token value (hash or plain)
	query := `
        SELECT id, token, tokenable_id, abilities, expires_at
        FROM personal_access_tokens
        WHERE tokenable_type = $1
          AND token IN ($2, $3)
          AND (expires_at IS NULL OR expires_at > $4)
        ORDER BY created_at DESC
        LIMIT 1
    `

	err := r.pg.Pool.QueryRow(ctx, query, userTokenableType, hashStr, tokenPart, time.Now()).Scan(
		&pat.ID,
		&pat.TokenHash,
		&pat.UserID,
		&pat.Abilities,
		&pat.ExpiresAt,
	)
	if err != nil {
		return nil, errors.New("token not found")
	}

	return &pat, nil
}
