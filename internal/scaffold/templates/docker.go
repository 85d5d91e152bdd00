package templates

import (
	"fmt"

	"github.com/stackgen-dev/stackgen/internal/config"
)

// DockerCompose produces docker-compose.yml for the selected database.
// Only emitted for Express projects with both a database and the docker
// flag; calling it without a database is a contract violation.
func DockerCompose(db config.Database, projectName string) string {
	switch db {
	case config.DatabasePostgres:
		return fmt.Sprintf(`services:
  postgres:
    image: postgres:16
    restart: unless-stopped
    environment:
      POSTGRES_USER: postgres
      POSTGRES_PASSWORD: postgres
      POSTGRES_DB: %s
    ports:
      - "5432:5432"
    volumes:
      - postgres-data:/var/lib/postgresql/data
    healthcheck:
      test: ["CMD-SHELL", "pg_isready -U postgres"]
      interval: 10s
      timeout: 5s
      retries: 5

volumes:
  postgres-data:
`, SiteSlug(projectName))
	case config.DatabaseMongo:
		return fmt.Sprintf(`services:
  mongodb:
    image: mongo:7
    restart: unless-stopped
    environment:
      MONGO_INITDB_DATABASE: %s
    ports:
      - "27017:27017"
    volumes:
      - mongo-data:/data/db
    healthcheck:
      test: ["CMD-SHELL", "mongosh --eval 'db.runCommand({ ping: 1 })'"]
      interval: 10s
      timeout: 5s
      retries: 5

volumes:
  mongo-data:
`, SiteSlug(projectName))
	}
	return unknownEnum("database", db)
}
