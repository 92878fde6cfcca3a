// Package services provides domain services that operate over collections
// of aggregates. The Board service answers the partition queries the
// kitchen board and delivery views are built from, keeping that logic in
// one place regardless of which transport or storage feeds it.
package services
