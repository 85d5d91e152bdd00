package templates

import (
	"strings"
	"testing"

	"github.com/stackgen-dev/stackgen/internal/config"
)

func TestExpressRoutesIndexRegistrations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		params    ExpressSourceParams
		wantAuth  bool
		wantUsers bool
	}{
		{"bare", ExpressSourceParams{Database: config.DatabaseNone}, false, false},
		{"db only", ExpressSourceParams{Database: config.DatabasePostgres}, false, true},
		{"db and auth", ExpressSourceParams{Database: config.DatabaseMongo, Auth: true}, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ExpressRoutesIndex(tt.params)

			if !strings.Contains(got, "router.use('/health', healthRoutes);") {
				t.Error("health route not registered")
			}
			if hasAuth := strings.Contains(got, "router.use('/auth', authRoutes);"); hasAuth != tt.wantAuth {
				t.Errorf("auth registration = %v, want %v", hasAuth, tt.wantAuth)
			}
			if hasUsers := strings.Contains(got, "router.use('/users', userRoutes);"); hasUsers != tt.wantUsers {
				t.Errorf("users registration = %v, want %v", hasUsers, tt.wantUsers)
			}
			// No import line without a matching registration.
			if strings.Contains(got, "from './auth.js'") != tt.wantAuth {
				t.Error("auth import does not match registration")
			}
			if strings.Contains(got, "from './users.js'") != tt.wantUsers {
				t.Error("users import does not match registration")
			}
		})
	}
}

func TestExpressAuthControllerPersistenceAPIs(t *testing.T) {
	t.Parallel()

	prisma := ExpressAuthController(config.DatabasePostgres)
	if !strings.Contains(prisma, "prisma.user") {
		t.Error("postgres controller does not use the prisma client")
	}
	if !strings.Contains(prisma, "P2002") {
		t.Error("postgres controller missing prisma duplicate-key code")
	}
	if strings.Contains(prisma, "mongoose") || strings.Contains(prisma, "11000") {
		t.Error("postgres controller leaks mongoose specifics")
	}

	mongo := ExpressAuthController(config.DatabaseMongo)
	if !strings.Contains(mongo, "User.") {
		t.Error("mongo controller does not use the mongoose model")
	}
	if !strings.Contains(mongo, "11000") {
		t.Error("mongo controller missing mongoose duplicate-key code")
	}
	if strings.Contains(mongo, "prisma") || strings.Contains(mongo, "P2002") {
		t.Error("mongo controller leaks prisma specifics")
	}

	// Both bodies share the credential flow.
	for _, body := range []string{prisma, mongo} {
		if !strings.Contains(body, "bcrypt") || !strings.Contains(body, "jwt.sign") {
			t.Error("auth controller missing bcrypt/jwt flow")
		}
	}
}

func TestExpressUserRoutesProtection(t *testing.T) {
	t.Parallel()

	if got := ExpressUserRoutes(true); !strings.Contains(got, "requireAuth") {
		t.Error("auth-enabled user routes missing requireAuth middleware")
	}
	if got := ExpressUserRoutes(false); strings.Contains(got, "requireAuth") {
		t.Error("auth-disabled user routes reference requireAuth")
	}
}

func TestExpressUserModelPasswordField(t *testing.T) {
	t.Parallel()

	if got := ExpressUserModel(true); !strings.Contains(got, "passwordHash") {
		t.Error("auth-enabled user model missing passwordHash")
	}
	if got := ExpressUserModel(false); strings.Contains(got, "passwordHash") {
		t.Error("auth-disabled user model has passwordHash")
	}
}

func TestPrismaSchema(t *testing.T) {
	t.Parallel()

	withAuth := PrismaSchema(true)
	if !strings.Contains(withAuth, "model User") {
		t.Error("schema missing User model")
	}
	if !strings.Contains(withAuth, "passwordHash") {
		t.Error("auth-enabled schema missing passwordHash column")
	}

	withoutAuth := PrismaSchema(false)
	if !strings.Contains(withoutAuth, "model User") {
		t.Error("schema must keep the User model backing the user routes")
	}
	if strings.Contains(withoutAuth, "passwordHash") {
		t.Error("auth-disabled schema has passwordHash column")
	}
}

func TestExpressAppSwaggerWiring(t *testing.T) {
	t.Parallel()

	with := ExpressApp(ExpressSourceParams{Database: config.DatabaseNone, Swagger: true})
	if !strings.Contains(with, "swaggerDocs(app);") || !strings.Contains(with, "./docs/swagger.js") {
		t.Error("swagger-enabled app missing swagger wiring")
	}
	without := ExpressApp(ExpressSourceParams{Database: config.DatabaseNone})
	if strings.Contains(without, "swagger") {
		t.Error("swagger-disabled app references swagger")
	}
}

func TestExpressIndexDatabaseStartup(t *testing.T) {
	t.Parallel()

	if got := ExpressIndex(config.DatabaseMongo); !strings.Contains(got, "connectDB") {
		t.Error("mongo entry point does not connect to the database")
	}
	if got := ExpressIndex(config.DatabaseNone); strings.Contains(got, "connectDB") {
		t.Error("database-less entry point references connectDB")
	}
}

func TestDockerCompose(t *testing.T) {
	t.Parallel()

	pg := DockerCompose(config.DatabasePostgres, "@scope/demo")
	if !strings.Contains(pg, "postgres") {
		t.Error("postgres compose missing postgres service")
	}
	if !strings.Contains(pg, "demo") || strings.Contains(pg, "@scope") {
		t.Error("compose must use the unscoped project slug")
	}

	mongo := DockerCompose(config.DatabaseMongo, "demo")
	if !strings.Contains(mongo, "mongo") {
		t.Error("mongo compose missing mongo service")
	}
}
