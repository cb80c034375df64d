package repository

const (
	createVideoQuery = `INSERT INTO videos (user_id, title, description, video_url, thumbnail_url, duration, views, is_published)
					VALUES ($1, $2, $3, $4, $5, $6, 0, false)
					RETURNING *`

	getVideoByIDQuery = `SELECT video_id, user_id, title, description, video_url, thumbnail_url, duration, views, is_published, created_at, updated_at
					FROM videos WHERE video_id = $1`

	updateVideoQuery = `UPDATE videos
					SET title = $1,
					    description = $2,
					    thumbnail_url = $3,
					    is_published = $4,
					    updated_at = now()
					WHERE video_id = $5
					RETURNING *`

	deleteVideoQuery = `DELETE FROM videos WHERE video_id = $1`

	incrementViewsQuery = `UPDATE videos SET views = views + 1, updated_at = now() WHERE video_id = $1`

	searchVideosBaseQuery = `SELECT video_id, user_id, title, description, video_url, thumbnail_url, duration, views, is_published, created_at, updated_at
					FROM videos`
)
