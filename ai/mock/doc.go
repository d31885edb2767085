// Package mock provides test doubles for the ai interfaces.
//
// The mocks allow behavior injection through public function fields and
// track call counts for assertions. They keep unit tests free of external
// AI service dependencies.
package mock
