package ticket

import (
	"fmt"
	"time"
)

// Attachment records the metadata of an already-uploaded file. Byte
// storage, thumbnailing, and streaming live outside this service; the
// core only persists descriptors.
type Attachment struct {
	id           uint
	ticketID     uint
	messageID    *uint
	fileName     string
	originalName string
	fileSize     int64
	mimeType     string
	storagePath  string
	uploaderID   uint
	createdAt    time.Time
}

func NewAttachment(
	ticketID uint,
	messageID *uint,
	fileName string,
	originalName string,
	fileSize int64,
	mimeType string,
	storagePath string,
	uploaderID uint,
) (*Attachment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(fileName) == 0 {
		return nil, fmt.Errorf("file name is required")
	}
	if fileSize < 0 {
		return nil, fmt.Errorf("file size cannot be negative")
	}
	if len(storagePath) == 0 {
		return nil, fmt.Errorf("storage path is required")
	}
	if uploaderID == 0 {
		return nil, fmt.Errorf("uploader ID is required")
	}

	return &Attachment{
		ticketID:     ticketID,
		messageID:    messageID,
		fileName:     fileName,
		originalName: originalName,
		fileSize:     fileSize,
		mimeType:     mimeType,
		storagePath:  storagePath,
		uploaderID:   uploaderID,
		createdAt:    time.Now(),
	}, nil
}

func ReconstructAttachment(
	id uint,
	ticketID uint,
	messageID *uint,
	fileName string,
	originalName string,
	fileSize int64,
	mimeType string,
	storagePath string,
	uploaderID uint,
	createdAt time.Time,
) (*Attachment, error) {
	if id == 0 {
		return nil, fmt.Errorf("attachment ID cannot be zero")
	}

	return &Attachment{
		id:           id,
		ticketID:     ticketID,
		messageID:    messageID,
		fileName:     fileName,
		originalName: originalName,
		fileSize:     fileSize,
		mimeType:     mimeType,
		storagePath:  storagePath,
		uploaderID:   uploaderID,
		createdAt:    createdAt,
	}, nil
}

func (a *Attachment) ID() uint             { return a.id }
func (a *Attachment) TicketID() uint       { return a.ticketID }
func (a *Attachment) MessageID() *uint     { return a.messageID }
func (a *Attachment) FileName() string     { return a.fileName }
func (a *Attachment) OriginalName() string { return a.originalName }
func (a *Attachment) FileSize() int64      { return a.fileSize }
func (a *Attachment) MimeType() string     { return a.mimeType }
func (a *Attachment) StoragePath() string  { return a.storagePath }
func (a *Attachment) UploaderID() uint     { return a.uploaderID }
func (a *Attachment) CreatedAt() time.Time { return a.createdAt }

func (a *Attachment) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("attachment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("attachment ID cannot be zero")
	}
	a.id = id
	return nil
}

func (a *Attachment) SetMessageID(messageID uint) {
	if a.messageID == nil && messageID != 0 {
		a.messageID = &messageID
	}
}

// FileMetadata is the 1:1 derived record for an attachment: checksum,
// image probe results, thumbnail path, and access bookkeeping.
type FileMetadata struct {
	id            uint
	attachmentID  uint
	checksum      string
	isImage       bool
	width         int
	height        int
	thumbnailPath string
	downloadCount int64
	lastAccessed  *time.Time
	createdAt     time.Time
}

func NewFileMetadata(
	attachmentID uint,
	checksum string,
	isImage bool,
	width, height int,
	thumbnailPath string,
) (*FileMetadata, error) {
	if attachmentID == 0 {
		return nil, fmt.Errorf("attachment ID is required")
	}
	if len(checksum) == 0 {
		return nil, fmt.Errorf("checksum is required")
	}

	return &FileMetadata{
		attachmentID:  attachmentID,
		checksum:      checksum,
		isImage:       isImage,
		width:         width,
		height:        height,
		thumbnailPath: thumbnailPath,
		createdAt:     time.Now(),
	}, nil
}

func ReconstructFileMetadata(
	id uint,
	attachmentID uint,
	checksum string,
	isImage bool,
	width, height int,
	thumbnailPath string,
	downloadCount int64,
	lastAccessed *time.Time,
	createdAt time.Time,
) (*FileMetadata, error) {
	if id == 0 {
		return nil, fmt.Errorf("file metadata ID cannot be zero")
	}

	return &FileMetadata{
		id:            id,
		attachmentID:  attachmentID,
		checksum:      checksum,
		isImage:       isImage,
		width:         width,
		height:        height,
		thumbnailPath: thumbnailPath,
		downloadCount: downloadCount,
		lastAccessed:  lastAccessed,
		createdAt:     createdAt,
	}, nil
}

func (f *FileMetadata) ID() uint                 { return f.id }
func (f *FileMetadata) AttachmentID() uint       { return f.attachmentID }
func (f *FileMetadata) Checksum() string         { return f.checksum }
func (f *FileMetadata) IsImage() bool            { return f.isImage }
func (f *FileMetadata) Width() int               { return f.width }
func (f *FileMetadata) Height() int              { return f.height }
func (f *FileMetadata) ThumbnailPath() string    { return f.thumbnailPath }
func (f *FileMetadata) DownloadCount() int64     { return f.downloadCount }
func (f *FileMetadata) LastAccessed() *time.Time { return f.lastAccessed }
func (f *FileMetadata) CreatedAt() time.Time     { return f.createdAt }

func (f *FileMetadata) SetID(id uint) error {
	if f.id != 0 {
		return fmt.Errorf("file metadata ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("file metadata ID cannot be zero")
	}
	f.id = id
	return nil
}
