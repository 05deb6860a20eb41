package cache

type Channel string

const ModerationChannel Channel = "trustguard:moderation"
