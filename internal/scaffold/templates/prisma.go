package templates

// PrismaSchema produces prisma/schema.prisma for the relational path.
// The User model backs the user routes, which exist whenever a database
// is selected; the passwordHash column only exists when authentication
// stores credentials.
func PrismaSchema(auth bool) string {
	base := `generator client {
  provider = "prisma-client-js"
}

datasource db {
  provider = "postgresql"
  url      = env("DATABASE_URL")
}
`

	if auth {
		return base + `
model User {
  id           String   @id @default(cuid())
  email        String   @unique
  name         String?
  passwordHash String
  createdAt    DateTime @default(now())
  updatedAt    DateTime @updatedAt
}
`
	}
	return base + `
model User {
  id        String   @id @default(cuid())
  email     String   @unique
  name      String?
  createdAt DateTime @default(now())
  updatedAt DateTime @updatedAt
}
`
}
