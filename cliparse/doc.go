// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Server

	cfg, err := cliparse.ParseFlags(os.Args[1:])

	-p       PORT          Server port (default 3000)
	-data    DATA_DIR      JSON document directory (default ./data)
	-t       STORE_TYPE    file | sqlite | postgres | redis (default file)
	-d       DATABASE_URL  Required for sqlite and postgres
	-redis   REDIS_URL     Required for redis
	-static  STATIC_DIR    Front-end directory (default ./public)
	-debug   DEBUG         Debug logging

# Client

	cfg, rest, err := cliparse.ParseClientFlags(os.Args[1:])

	-api     WHEEL_API_URL    API base URL (default http://localhost:3000)
	-cache   WHEEL_CACHE_DIR  Offline cache (default <user cache dir>/game-wheel)
	-list                     Active list (default main)

rest holds the subcommand and its operands.

CLI flags take precedence over environment variables. main loads a .env
file (if present) before parsing, so its values count as environment.
*/
package cliparse
