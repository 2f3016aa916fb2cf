package store

import (
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"braindrop/models"
)

// qb is the shared squirrel builder. SQLite uses ? placeholders.
var qb = sq.StatementBuilder.PlaceholderFormat(sq.Question)

var raindropColumns = []string{
	"id",
	"collection_id",
	"cover",
	"created",
	"domain",
	"excerpt",
	"note",
	"last_update",
	"link",
	"media",
	"tags",
	"title",
	"type",
	"broken",
	"user_id",
}

var collectionColumns = []string{
	"id",
	"title",
	"parent_id",
	"color",
	"count",
	"cover",
	"expanded",
	"public",
	"sort",
	"view",
	"created",
	"last_update",
}

const upsertRaindropSuffix = `ON CONFLICT(id) DO UPDATE SET
	collection_id = excluded.collection_id,
	cover         = excluded.cover,
	created       = excluded.created,
	domain        = excluded.domain,
	excerpt       = excluded.excerpt,
	note          = excluded.note,
	last_update   = excluded.last_update,
	link          = excluded.link,
	media         = excluded.media,
	tags          = excluded.tags,
	title         = excluded.title,
	type          = excluded.type,
	broken        = excluded.broken,
	user_id       = excluded.user_id`

const upsertCollectionSuffix = `ON CONFLICT(id) DO UPDATE SET
	title       = excluded.title,
	parent_id   = excluded.parent_id,
	color       = excluded.color,
	count       = excluded.count,
	cover       = excluded.cover,
	expanded    = excluded.expanded,
	public      = excluded.public,
	sort        = excluded.sort,
	view        = excluded.view,
	created     = excluded.created,
	last_update = excluded.last_update`

func buildSelectRaindropsQuery() (string, []any, error) {
	return qb.Select(raindropColumns...).
		From("raindrops").
		OrderBy("created DESC", "id DESC").
		ToSql()
}

func buildUpsertRaindropQuery(raindrop models.Raindrop) (string, []any, error) {
	values, err := raindropValues(raindrop)
	if err != nil {
		return "", nil, err
	}

	return qb.Insert("raindrops").
		Columns(raindropColumns...).
		Values(values...).
		Suffix(upsertRaindropSuffix).
		ToSql()
}

func buildDeleteRaindropQuery(id int64) (string, []any, error) {
	return qb.Delete("raindrops").Where(sq.Eq{"id": id}).ToSql()
}

func buildDeleteAllRaindropsQuery() (string, []any, error) {
	return qb.Delete("raindrops").ToSql()
}

func buildSelectCollectionsQuery() (string, []any, error) {
	return qb.Select(collectionColumns...).
		From("collections").
		OrderBy("sort DESC", "title ASC").
		ToSql()
}

func buildUpsertCollectionQuery(collection models.Collection) (string, []any, error) {
	values, err := collectionValues(collection)
	if err != nil {
		return "", nil, err
	}

	return qb.Insert("collections").
		Columns(collectionColumns...).
		Values(values...).
		Suffix(upsertCollectionSuffix).
		ToSql()
}

func buildDeleteAllCollectionsQuery() (string, []any, error) {
	return qb.Delete("collections").ToSql()
}

func buildUpsertMetaQuery(key, value string) (string, []any, error) {
	return qb.Insert("meta").
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value").
		ToSql()
}

func buildSelectMetaQuery(key string) (string, []any, error) {
	return qb.Select("value").From("meta").Where(sq.Eq{"key": key}).ToSql()
}

// raindropValues lays out a raindrop in column order. Media is stored as
// JSON, tags as the comma-joined display string.
func raindropValues(raindrop models.Raindrop) ([]any, error) {
	media := raindrop.Media
	if media == nil {
		media = []models.Media{}
	}
	encodedMedia, err := json.Marshal(media)
	if err != nil {
		return nil, fmt.Errorf("error encoding media: %w", err)
	}

	return []any{
		raindrop.ID,
		raindrop.Collection,
		raindrop.Cover,
		raindrop.Created,
		raindrop.Domain,
		raindrop.Excerpt,
		raindrop.Note,
		raindrop.LastUpdate,
		raindrop.Link,
		string(encodedMedia),
		models.TagsToString(raindrop.Tags),
		raindrop.Title,
		string(raindrop.Type),
		raindrop.Broken,
		raindrop.UserID,
	}, nil
}

// collectionValues lays out a collection in column order. Cover URLs are
// stored as JSON.
func collectionValues(collection models.Collection) ([]any, error) {
	cover := collection.Cover
	if cover == nil {
		cover = []string{}
	}
	encodedCover, err := json.Marshal(cover)
	if err != nil {
		return nil, fmt.Errorf("error encoding cover: %w", err)
	}

	return []any{
		collection.ID,
		collection.Title,
		collection.Parent,
		collection.Color,
		collection.Count,
		string(encodedCover),
		collection.Expanded,
		collection.Public,
		collection.Sort,
		collection.View,
		collection.Created,
		collection.LastUpdate,
	}, nil
}
