// Package domain defines the core entities of the Aksara learning
// application: users with their gamification state, lessons and the
// exercises they own, dictionary entries, and per-lesson user progress.
// Entities carry their own validation; all behavior that mutates
// progression state lives in the progression subpackage.
package domain
