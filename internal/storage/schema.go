package storage

const sqliteSchema = `
-- Flashcards. box is the Leitner box, next_review_date the instant the card is due.
CREATE TABLE IF NOT EXISTS cards (
    id TEXT PRIMARY KEY,
    owner_id TEXT NOT NULL,
    question TEXT NOT NULL,
    answer TEXT NOT NULL,
    image TEXT NOT NULL DEFAULT '',
    box INTEGER NOT NULL DEFAULT 1 CHECK (box BETWEEN 1 AND 5),
    next_review_date DATETIME NOT NULL,
    content_hash TEXT NOT NULL,
    created_at DATETIME NOT NULL,
    updated_at DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_cards_owner_due ON cards(owner_id, next_review_date);
CREATE INDEX IF NOT EXISTS idx_cards_owner_hash ON cards(owner_id, content_hash);

-- One streak row per owner, created on first evaluation.
CREATE TABLE IF NOT EXISTS streaks (
    owner_id TEXT PRIMARY KEY,
    streak_count INTEGER NOT NULL DEFAULT 0,
    last_completion_date DATETIME,
    last_check_date DATETIME
);

-- Calendar days (YYYY-MM-DD) on which the owner cleared every due card.
CREATE TABLE IF NOT EXISTS completed_days (
    owner_id TEXT NOT NULL,
    day TEXT NOT NULL,
    PRIMARY KEY (owner_id, day)
);

-- Append-only review log, also the idempotency ledger.
CREATE TABLE IF NOT EXISTS reviews (
    id TEXT PRIMARY KEY,
    owner_id TEXT NOT NULL,
    card_id TEXT NOT NULL,
    correct BOOLEAN NOT NULL,
    box_before INTEGER NOT NULL,
    box_after INTEGER NOT NULL,
    reviewed_at DATETIME NOT NULL,
    idempotency_key TEXT
);
CREATE INDEX IF NOT EXISTS idx_reviews_owner_card ON reviews(owner_id, card_id, reviewed_at);
CREATE UNIQUE INDEX IF NOT EXISTS uq_reviews_owner_key ON reviews(owner_id, idempotency_key);
`

const postgresSchema = `
CREATE TABLE IF NOT EXISTS cards (
    id TEXT PRIMARY KEY,
    owner_id TEXT NOT NULL,
    question TEXT NOT NULL,
    answer TEXT NOT NULL,
    image TEXT NOT NULL DEFAULT '',
    box INTEGER NOT NULL DEFAULT 1 CHECK (box BETWEEN 1 AND 5),
    next_review_date TIMESTAMPTZ NOT NULL,
    content_hash TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_cards_owner_due ON cards(owner_id, next_review_date);
CREATE INDEX IF NOT EXISTS idx_cards_owner_hash ON cards(owner_id, content_hash);

CREATE TABLE IF NOT EXISTS streaks (
    owner_id TEXT PRIMARY KEY,
    streak_count INTEGER NOT NULL DEFAULT 0,
    last_completion_date TIMESTAMPTZ,
    last_check_date TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS completed_days (
    owner_id TEXT NOT NULL,
    day TEXT NOT NULL,
    PRIMARY KEY (owner_id, day)
);

CREATE TABLE IF NOT EXISTS reviews (
    id TEXT PRIMARY KEY,
    owner_id TEXT NOT NULL,
    card_id TEXT NOT NULL,
    correct BOOLEAN NOT NULL,
    box_before INTEGER NOT NULL,
    box_after INTEGER NOT NULL,
    reviewed_at TIMESTAMPTZ NOT NULL,
    idempotency_key TEXT
);
CREATE INDEX IF NOT EXISTS idx_reviews_owner_card ON reviews(owner_id, card_id, reviewed_at);
CREATE UNIQUE INDEX IF NOT EXISTS uq_reviews_owner_key ON reviews(owner_id, idempotency_key);
`
