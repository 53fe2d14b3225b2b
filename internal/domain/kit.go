package domain

// Kit единица проката, один из небольшого пула взаимозаменяемых наборов.
// Наборы не удаляются, пока на них ссылаются исторические бронирования:
// вывод из эксплуатации выполняется деактивацией.
type Kit struct {
	ID       int64
	Name     string
	IsActive bool
}
