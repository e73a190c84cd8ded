package config

import (
	"fmt"
	"os"
)

type DynamoConfig struct {
	TableName  string
	TtlMinutes int
}

func GetDynamoConfig() (*DynamoConfig, error) {
	tableName := os.Getenv("SCENE_TABLE_NAME")
	if tableName == "" {
		return nil, fmt.Errorf("SCENE_TABLE_NAME must be set")
	}
	ttlMinutes, err := envIntOr("SCENE_TTL_MINUTES", 1440)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SCENE_TTL_MINUTES")
	}

	return &DynamoConfig{
		TableName:  tableName,
		TtlMinutes: ttlMinutes,
	}, nil
}
