// Package images is the local image version cache: one row per menu id
// holding the image version it was downloaded at and the base64 payload.
//
// Writes use replace semantics. Upserting (mid, version, payload) over an
// existing row for mid overwrites both version and payload; there is never
// more than one row per mid and rows are never evicted.
//
//	repo := images.NewSQLiteRepository(db)
//	_ = repo.Upsert(ctx, &models.ImageVersion{MenuID: 5, Version: 2, Payload: b64})
//	v, ok, _ := repo.GetVersion(ctx, 5)
//	img, _ := repo.Get(ctx, 5)
package images
