// Package pg provides a PostgreSQL-backed user store for the remember-me
// core, plus connection management with retry logic and embedded goose
// migrations.
//
// The store maps onto an existing users table: the token hash lives in a
// single configurable column (default login_cookie) on the user record,
// matching the single-active-token model. Table and column names come from
// StoreConfig and are identifier-quoted; an optional Scope predicate narrows
// the username lookup (e.g. to exclude soft-deleted accounts).
//
//	db, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer db.Close()
//
//	if err := pg.Migrate(ctx, db); err != nil {
//		log.Fatal(err)
//	}
//
//	store := pg.NewStore(db, pg.DefaultStoreConfig())
//	auth, err := rememberme.New(authCfg, store, cookie.New())
package pg
