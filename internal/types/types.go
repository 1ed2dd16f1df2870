// internal/types/types.go
package types

// EntityID — монотонно возрастающий идентификатор сущности.
// Целое число вместо случайной строки: проверка "уже получал урон
// от этого снаряда" не должна аллоцировать.
type EntityID int
