package templates

import (
	"fmt"
	"strings"

	"github.com/stackgen-dev/stackgen/internal/config"
)

// ExpressSourceParams is the flag tuple the Express source bodies are keyed by.
type ExpressSourceParams struct {
	Database config.Database
	Auth     bool
	Swagger  bool
}

// ExpressIndex produces src/index.js. The MongoDB variant connects before
// listening; the Prisma client connects lazily on first query.
func ExpressIndex(db config.Database) string {
	switch db {
	case config.DatabaseMongo:
		return `import 'dotenv/config';
import app from './app.js';
import { connectDB } from './lib/db.js';

const port = process.env.PORT ?? 3000;

await connectDB();

app.listen(port, () => {
  console.log(` + "`Server listening on http://localhost:${port}`" + `);
});
`
	case config.DatabaseNone, config.DatabasePostgres:
		return `import 'dotenv/config';
import app from './app.js';

const port = process.env.PORT ?? 3000;

app.listen(port, () => {
  console.log(` + "`Server listening on http://localhost:${port}`" + `);
});
`
	}
	return unknownEnum("database", db)
}

// ExpressApp produces src/app.js: security and logging middleware, the
// routes index, optional Swagger UI, and the central error handler.
func ExpressApp(p ExpressSourceParams) string {
	var b strings.Builder

	b.WriteString(`import express from 'express';
import helmet from 'helmet';
import cors from 'cors';
import morgan from 'morgan';
import routes from './routes/index.js';
import { errorHandler } from './middleware/errorHandler.js';
`)
	if p.Swagger {
		b.WriteString("import { swaggerDocs } from './docs/swagger.js';\n")
	}

	b.WriteString(`
const app = express();

app.use(helmet());
app.use(cors());
app.use(morgan('dev'));
app.use(express.json());

app.use('/api', routes);
`)
	if p.Swagger {
		b.WriteString("\nswaggerDocs(app);\n")
	}
	b.WriteString(`
app.use(errorHandler);

export default app;
`)
	return b.String()
}

// ExpressRoutesIndex produces src/routes/index.js. The registration lines
// must exactly match the route files emitted for this flag combination:
// health is unconditional, auth requires the auth flag, users requires a
// database.
func ExpressRoutesIndex(p ExpressSourceParams) string {
	var b strings.Builder

	b.WriteString("import { Router } from 'express';\nimport healthRoutes from './health.js';\n")
	if p.Auth {
		b.WriteString("import authRoutes from './auth.js';\n")
	}
	if p.Database != config.DatabaseNone {
		b.WriteString("import userRoutes from './users.js';\n")
	}

	b.WriteString("\nconst router = Router();\n\nrouter.use('/health', healthRoutes);\n")
	if p.Auth {
		b.WriteString("router.use('/auth', authRoutes);\n")
	}
	if p.Database != config.DatabaseNone {
		b.WriteString("router.use('/users', userRoutes);\n")
	}
	b.WriteString("\nexport default router;\n")
	return b.String()
}

// ExpressHealthRoute produces src/routes/health.js. The timestamp is
// read at request time by the generated server, not at generation time.
func ExpressHealthRoute() string {
	return `import { Router } from 'express';

const router = Router();

router.get('/', (req, res) => {
  res.json({
    status: 'ok',
    uptime: process.uptime(),
    timestamp: new Date().toISOString(),
  });
});

export default router;
`
}

// ExpressAuthRoutes produces src/routes/auth.js, only emitted with auth.
func ExpressAuthRoutes() string {
	return `import { Router } from 'express';
import { register, login } from '../controllers/authController.js';

const router = Router();

router.post('/register', register);
router.post('/login', login);

export default router;
`
}

// ExpressUserRoutes produces src/routes/users.js, only emitted with a
// database. The list route is protected when auth is enabled.
func ExpressUserRoutes(auth bool) string {
	if auth {
		return `import { Router } from 'express';
import { listUsers } from '../controllers/userController.js';
import { requireAuth } from '../middleware/auth.js';

const router = Router();

router.get('/', requireAuth, listUsers);

export default router;
`
	}
	return `import { Router } from 'express';
import { listUsers } from '../controllers/userController.js';

const router = Router();

router.get('/', listUsers);

export default router;
`
}

// ExpressAuthController produces src/controllers/authController.js.
// The two bodies differ by persistence API and by the duplicate-key error
// shape: Prisma raises code "P2002", Mongoose raises code 11000. Calling
// this without a database is a contract violation.
func ExpressAuthController(db config.Database) string {
	switch db {
	case config.DatabasePostgres:
		return `import bcrypt from 'bcryptjs';
import jwt from 'jsonwebtoken';
import { prisma } from '../lib/prisma.js';

export async function register(req, res, next) {
  try {
    const { email, password, name } = req.body;
    if (!email || !password) {
      return res.status(400).json({ error: 'email and password are required' });
    }
    const passwordHash = await bcrypt.hash(password, 10);
    const user = await prisma.user.create({
      data: { email, name, passwordHash },
      select: { id: true, email: true, name: true, createdAt: true },
    });
    res.status(201).json(user);
  } catch (err) {
    if (err.code === 'P2002') {
      return res.status(409).json({ error: 'email already registered' });
    }
    next(err);
  }
}

export async function login(req, res, next) {
  try {
    const { email, password } = req.body;
    const user = await prisma.user.findUnique({ where: { email } });
    if (!user || !(await bcrypt.compare(password, user.passwordHash))) {
      return res.status(401).json({ error: 'invalid credentials' });
    }
    const token = jwt.sign({ sub: user.id }, process.env.JWT_SECRET, {
      expiresIn: process.env.JWT_EXPIRES_IN ?? '7d',
    });
    res.json({ token });
  } catch (err) {
    next(err);
  }
}
`
	case config.DatabaseMongo:
		return `import bcrypt from 'bcryptjs';
import jwt from 'jsonwebtoken';
import { User } from '../models/User.js';

export async function register(req, res, next) {
  try {
    const { email, password, name } = req.body;
    if (!email || !password) {
      return res.status(400).json({ error: 'email and password are required' });
    }
    const passwordHash = await bcrypt.hash(password, 10);
    const user = await User.create({ email, name, passwordHash });
    res.status(201).json({
      id: user.id,
      email: user.email,
      name: user.name,
      createdAt: user.createdAt,
    });
  } catch (err) {
    if (err.code === 11000) {
      return res.status(409).json({ error: 'email already registered' });
    }
    next(err);
  }
}

export async function login(req, res, next) {
  try {
    const { email, password } = req.body;
    const user = await User.findOne({ email });
    if (!user || !(await bcrypt.compare(password, user.passwordHash))) {
      return res.status(401).json({ error: 'invalid credentials' });
    }
    const token = jwt.sign({ sub: user.id }, process.env.JWT_SECRET, {
      expiresIn: process.env.JWT_EXPIRES_IN ?? '7d',
    });
    res.json({ token });
  } catch (err) {
    next(err);
  }
}
`
	}
	return unknownEnum("database", db)
}

// ExpressUserController produces src/controllers/userController.js, only
// emitted with a database.
func ExpressUserController(db config.Database) string {
	switch db {
	case config.DatabasePostgres:
		return `import { prisma } from '../lib/prisma.js';

export async function listUsers(req, res, next) {
  try {
    const users = await prisma.user.findMany({
      select: { id: true, email: true, name: true, createdAt: true },
    });
    res.json(users);
  } catch (err) {
    next(err);
  }
}
`
	case config.DatabaseMongo:
		return `import { User } from '../models/User.js';

export async function listUsers(req, res, next) {
  try {
    const users = await User.find().select('email name createdAt');
    res.json(users);
  } catch (err) {
    next(err);
  }
}
`
	}
	return unknownEnum("database", db)
}

// ExpressAuthMiddleware produces src/middleware/auth.js, only emitted with auth.
func ExpressAuthMiddleware() string {
	return `import jwt from 'jsonwebtoken';

export function requireAuth(req, res, next) {
  const header = req.headers.authorization ?? '';
  const token = header.startsWith('Bearer ') ? header.slice(7) : null;
  if (!token) {
    return res.status(401).json({ error: 'missing bearer token' });
  }
  try {
    req.user = jwt.verify(token, process.env.JWT_SECRET);
    next();
  } catch {
    res.status(401).json({ error: 'invalid or expired token' });
  }
}
`
}

// ExpressErrorHandler produces src/middleware/errorHandler.js.
func ExpressErrorHandler() string {
	return `export function errorHandler(err, req, res, next) {
  console.error(err);
  if (res.headersSent) {
    return next(err);
  }
  res.status(err.status ?? 500).json({ error: 'internal server error' });
}
`
}

// ExpressPrismaClient produces src/lib/prisma.js, only emitted with postgres.
func ExpressPrismaClient() string {
	return `import { PrismaClient } from '@prisma/client';

export const prisma = new PrismaClient();
`
}

// ExpressMongoConnect produces src/lib/db.js, only emitted with mongodb.
func ExpressMongoConnect() string {
	return `import mongoose from 'mongoose';

export async function connectDB() {
  const uri = process.env.MONGODB_URI;
  if (!uri) {
    throw new Error('MONGODB_URI is not set');
  }
  await mongoose.connect(uri);
  console.log('Connected to MongoDB');
}
`
}

// ExpressUserModel produces src/models/User.js, only emitted with mongodb.
// The passwordHash field only exists when authentication stores credentials.
func ExpressUserModel(auth bool) string {
	if auth {
		return `import mongoose from 'mongoose';

const userSchema = new mongoose.Schema(
  {
    email: { type: String, required: true, unique: true, lowercase: true },
    name: { type: String },
    passwordHash: { type: String, required: true },
  },
  { timestamps: true },
);

export const User = mongoose.model('User', userSchema);
`
	}
	return `import mongoose from 'mongoose';

const userSchema = new mongoose.Schema(
  {
    email: { type: String, required: true, unique: true, lowercase: true },
    name: { type: String },
  },
  { timestamps: true },
);

export const User = mongoose.model('User', userSchema);
`
}

// ExpressSwagger produces src/docs/swagger.js, only emitted with the
// swagger flag.
func ExpressSwagger(name string) string {
	return fmt.Sprintf(`import swaggerJsdoc from 'swagger-jsdoc';
import swaggerUi from 'swagger-ui-express';

const options = {
  definition: {
    openapi: '3.0.0',
    info: {
      title: %q,
      version: '0.1.0',
    },
  },
  apis: ['./src/routes/*.js'],
};

const spec = swaggerJsdoc(options);

export function swaggerDocs(app) {
  app.use('/api/docs', swaggerUi.serve, swaggerUi.setup(spec));
}
`, name)
}
