package cli

var EnvFilePath = envFilePath
