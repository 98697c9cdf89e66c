package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/medforum/threads-service/internal/models"
	"github.com/medforum/threads-service/internal/storage"
	"github.com/medforum/threads-service/pkg/log"
)

// CommentTree восстанавливает дерево ответов поста из плоской выборки.
//
// Алгоритм — O(N) по числу комментариев:
//  1. один bulk-запрос всех комментариев поста (удалённые включены);
//  2. один батч-запрос счетов (+ голоса зрителя);
//  3. один проход — индекс детей по parent_id;
//  4. рекурсивная сборка от корней, глубина не ограничивается.
//
// Порядок братьев на каждом уровне задаётся sort (пустое значение — newest)
// и применяется к уровню независимо, не глобально.
//
// Мягко удалённый комментарий остаётся узлом дерева: прячется только контент
// (маркер [removed]) и авторство, счёт и ответы сохраняются — структурное
// удаление оборвало бы цепочки ответов.
//
// Повреждённые данные (цикл parent-ссылок, ссылка на чужой/несуществующий
// родитель) дают ErrDataIntegrity, а не бесконечную рекурсию.
func (s *Service) CommentTree(ctx context.Context, postID uuid.UUID, viewerID *uuid.UUID, order models.CommentSort) ([]*models.CommentNode, error) {
	const op = "service/tree/CommentTree"

	lg := log.From(ctx).With("op", op, "post_id", postID.String())

	if postID == uuid.Nil {
		lg.Warn("invalid argument: empty post_id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if order == "" {
		order = models.SortNewest
	}

	if !order.Valid() {
		lg.Warn("invalid argument: bad sort order")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	// Дерево читается и для удалённого поста: ответы сохраняют достижимость.
	if _, err := s.storage.PostByID(ctx, postID); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("post not found")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on PostByID", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	comments, err := s.storage.CommentsByPost(ctx, postID)
	if err != nil {
		lg.Error("storage error on CommentsByPost", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	if len(comments) == 0 {
		return []*models.CommentNode{}, nil
	}

	ids := make([]uuid.UUID, 0, len(comments))
	for _, c := range comments {
		ids = append(ids, c.ID)
	}

	scores, err := s.scoresFor(ctx, models.TargetComment, ids, viewerID)
	if err != nil {
		lg.Error("storage error on batch score read", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	nodes := make(map[uuid.UUID]*models.CommentNode, len(comments))
	for i := range comments {
		c := comments[i]

		if c.IsDeleted {
			c.Content = models.RemovedContent
			c.AuthorID = uuid.Nil
		}

		nodes[c.ID] = &models.CommentNode{
			Comment: c,
			Score:   scores[c.ID],
			Replies: []*models.CommentNode{},
		}
	}

	var roots []*models.CommentNode
	children := make(map[uuid.UUID][]*models.CommentNode)

	for _, c := range comments {
		node := nodes[c.ID]

		if c.ParentID == nil {
			roots = append(roots, node)
			continue
		}

		if _, ok := nodes[*c.ParentID]; !ok {
			lg.Error("orphaned parent reference", "comment_id", c.ID.String(), "parent_id", c.ParentID.String())
			return nil, fmt.Errorf("%s: %w", op, ErrDataIntegrity)
		}

		children[*c.ParentID] = append(children[*c.ParentID], node)
	}

	visited := make(map[uuid.UUID]struct{}, len(comments))

	var attach func(node *models.CommentNode) error
	attach = func(node *models.CommentNode) error {
		id := node.Comment.ID
		if _, seen := visited[id]; seen {
			return ErrDataIntegrity
		}
		visited[id] = struct{}{}

		replies := children[id]
		sortSiblings(replies, order)
		node.Replies = replies

		for _, reply := range replies {
			if err := attach(reply); err != nil {
				return err
			}
		}

		return nil
	}

	sortSiblings(roots, order)
	for _, root := range roots {
		if err := attach(root); err != nil {
			lg.Error("cycle detected in parent chain")
			return nil, fmt.Errorf("%s: %w", op, ErrDataIntegrity)
		}
	}

	// Цикл, не достижимый ни из одного корня, не попадёт в visited.
	if len(visited) != len(comments) {
		lg.Error("parent chain cycle unreachable from roots",
			"visited", len(visited), "total", len(comments))
		return nil, fmt.Errorf("%s: %w", op, ErrDataIntegrity)
	}

	if roots == nil {
		roots = []*models.CommentNode{}
	}

	return roots, nil
}

// sortSiblings упорядочивает братьев одного уровня.
//   - newest: created_at DESC;
//   - oldest: created_at ASC;
//   - top/best: счёт DESC, при равенстве — новые первыми;
//   - controversial: |счёт| ASC среди голосованных (спорные первыми),
//     комментарии без голосов в конец — иначе непроголосованный шум
//     доминировал бы над действительно спорным; при равных |счётах|
//     больше голосов — выше.
//
// Все ветки добивают сравнение id — порядок устойчив между перезапусками.
func sortSiblings(nodes []*models.CommentNode, order models.CommentSort) {
	less := func(i, j *models.CommentNode) bool {
		switch order {
		case models.SortOldest:
			if !i.Comment.CreatedAt.Equal(j.Comment.CreatedAt) {
				return i.Comment.CreatedAt.Before(j.Comment.CreatedAt)
			}

		case models.SortTop, models.SortBest:
			if i.Score.Value != j.Score.Value {
				return i.Score.Value > j.Score.Value
			}
			if !i.Comment.CreatedAt.Equal(j.Comment.CreatedAt) {
				return i.Comment.CreatedAt.After(j.Comment.CreatedAt)
			}

		case models.SortControversial:
			ti := i.Score.Upvotes + i.Score.Downvotes
			tj := j.Score.Upvotes + j.Score.Downvotes

			if (ti == 0) != (tj == 0) {
				return tj == 0
			}

			if ti > 0 {
				ai, aj := abs64(i.Score.Value), abs64(j.Score.Value)
				if ai != aj {
					return ai < aj
				}
				if ti != tj {
					return ti > tj
				}
			}

			if !i.Comment.CreatedAt.Equal(j.Comment.CreatedAt) {
				return i.Comment.CreatedAt.After(j.Comment.CreatedAt)
			}

		default: // newest
			if !i.Comment.CreatedAt.Equal(j.Comment.CreatedAt) {
				return i.Comment.CreatedAt.After(j.Comment.CreatedAt)
			}
		}

		return i.Comment.ID.String() < j.Comment.ID.String()
	}

	sort.SliceStable(nodes, func(i, j int) bool { return less(nodes[i], nodes[j]) })
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}

	return v
}
