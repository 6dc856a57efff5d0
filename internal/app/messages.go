package app

import "time"

// indicatorFrameMsg advances the position indicator animation by one frame
type indicatorFrameMsg time.Time
