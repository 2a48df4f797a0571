package store

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Document is one mirrored record. Collections share a single table; the
// payload is the entity's flat JSON, CreatedAt is server-assigned.
type Document struct {
	Collection string    `gorm:"primaryKey;type:varchar(64)" json:"collection"`
	DocID      string    `gorm:"primaryKey;type:varchar(64);column:doc_id" json:"doc_id"`
	Data       []byte    `gorm:"type:jsonb;not null" json:"data"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Document) TableName() string {
	return "documents"
}

// replaceBatchSize caps bulk inserts, matching the original mirror's
// 500-operation batch limit.
const replaceBatchSize = 500

// Remote is the GORM-backed RemoteStore. A nil db means the mirror was not
// configured or unreachable at startup; every call then reports
// unavailable for the life of the process.
type Remote struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewRemote(db *gorm.DB, timeout time.Duration) *Remote {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Remote{db: db, timeout: timeout}
}

func (r *Remote) Available() bool {
	return r.db != nil
}

func (r *Remote) List(ctx context.Context, collection string) ([]json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var docs []Document
	err := r.db.WithContext(ctx).
		Where("collection = ?", collection).
		Order("created_at ASC").
		Find(&docs).Error
	if err != nil {
		return nil, err
	}

	raws := make([]json.RawMessage, 0, len(docs))
	for _, doc := range docs {
		raws = append(raws, json.RawMessage(doc.Data))
	}
	return raws, nil
}

func (r *Remote) Put(ctx context.Context, collection, id string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	record := Document{Collection: collection, DocID: id, Data: data}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "collection"}, {Name: "doc_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
		}).
		Create(&record).Error
}

func (r *Remote) Delete(ctx context.Context, collection, id string) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	return r.db.WithContext(ctx).
		Where("collection = ? AND doc_id = ?", collection, id).
		Delete(&Document{}).Error
}

// ReplaceAll discards the collection and rewrites it from docs, the mirror
// equivalent of saving a whole local record.
func (r *Remote) ReplaceAll(ctx context.Context, collection string, docs []RemoteDoc) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	records := make([]Document, 0, len(docs))
	for _, d := range docs {
		data, err := json.Marshal(d.Doc)
		if err != nil {
			return err
		}
		records = append(records, Document{Collection: collection, DocID: d.ID, Data: data})
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("collection = ?", collection).Delete(&Document{}).Error; err != nil {
			return err
		}
		if len(records) == 0 {
			return nil
		}
		return tx.CreateInBatches(records, replaceBatchSize).Error
	})
}
