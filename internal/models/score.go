package models

// Score — агрегат голосов одной цели на момент чтения.
//   - Upvotes/Downvotes — количество голосов +1 и -1 соответственно;
//   - Value = Upvotes - Downvotes;
//   - ViewerVote — голос смотрящего пользователя ("up"/"down"), nil если
//     пользователь аноним или не голосовал.
type Score struct {
	Upvotes    int64
	Downvotes  int64
	Value      int64
	ViewerVote *VoteDirection
}

// VoteCounts — сырые счётчики из реестра голосов (без привязки к зрителю).
type VoteCounts struct {
	Upvotes   int64
	Downvotes int64
}
