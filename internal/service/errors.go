package service

import "errors"

// Ошибки разрешения направлений: отличаются, чтобы API мог назвать,
// какой именно город не найден.
var (
	ErrOriginNotFound      = errors.New("город отправления не найден")
	ErrDestinationNotFound = errors.New("город назначения не найден")
)
