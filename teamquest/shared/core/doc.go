// Package core contains the TeamQuest domain: events, rank and difficulty rules, quest picking,
// notifications and the decision result returned by every Decide function.
//
// Nothing in here does I/O. Time and randomness are passed in.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'domain' layer.
package core
